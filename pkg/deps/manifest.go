package deps

// ManifestParser reads the direct dependencies declared in a manifest file.
type ManifestParser interface {
	// Parse reads the manifest at path and returns its dependency entries
	// in declaration order. A manifest without a dependencies section
	// yields no entries and no error.
	Parse(path string) ([]Dependency, error)
	// Type returns the manifest type identifier (e.g., "package.json").
	Type() string
}
