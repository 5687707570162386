package io

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/errors"
)

// DefaultOutputFile is the attribution list written to the working directory.
const DefaultOutputFile = "thankyoulist.json"

// WriteJSON encodes records as an indented JSON array and writes it to w.
// A nil or empty slice is written as [].
func WriteJSON(records []deps.Record, w io.Writer) error {
	if records == nil {
		records = []deps.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes records to a JSON file at path, replacing any existing
// file. Content is written to a temporary file in the same directory and
// renamed into place, so a failed write leaves the previous file untouched.
//
// A symlink at path is followed and its target replaced. An existing file
// keeps its permissions; a new file gets 0666 minus the process umask.
func ExportJSON(records []deps.Record, path string) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	mode, existed := fs.FileMode(0o666), false
	if info, err := os.Stat(path); err == nil {
		mode, existed = info.Mode().Perm(), true
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()[:8])
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer os.Remove(tmp)

	if err := WriteJSON(records, f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	// OpenFile applied the umask; restore the replaced file's exact mode.
	if existed {
		if err := os.Chmod(tmp, mode); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "replace %s", path)
	}
	return nil
}
