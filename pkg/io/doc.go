// Package io writes attribution lists as JSON.
//
// # JSON Format
//
// The output is an array with one object per dependency, in manifest order:
//
//	[
//	  {
//	    "name": "left-pad",
//	    "version": "^1.3.0",
//	    "description": "String left pad",
//	    "url": "https://github.com/stevemao/left-pad#readme",
//	    "license": "WTFPL"
//	  }
//	]
//
// Fields missing from the registry response are written as null. An empty
// list is written as [].
//
// # Files
//
// [ExportJSON] replaces the target atomically; [DefaultOutputFile] is the
// name the CLI writes in the current working directory.
package io
