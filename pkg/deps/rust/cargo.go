package rust

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/errors"
)

const depsTable = "dependencies"

// CargoToml parses Cargo.toml files. Only the top-level [dependencies]
// table is read.
type CargoToml struct{}

func (c *CargoToml) Type() string { return "Cargo.toml" }

// Parse returns the plain-string entries of [dependencies] in file order.
// Detailed specifications such as inline tables or [dependencies.name]
// sub-tables are skipped.
func (c *CargoToml) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}

	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	table, ok := doc[depsTable].(map[string]any)
	if !ok {
		return nil, nil
	}

	var entries []deps.Dependency
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != depsTable || key[1] == "" {
			continue
		}
		version, ok := table[key[1]].(string)
		if !ok {
			continue
		}
		entries = append(entries, deps.Dependency{Name: key[1], Version: version})
	}
	return entries, nil
}
