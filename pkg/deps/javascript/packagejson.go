package javascript

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/matzehuels/thankyou/pkg/deps"
	"github.com/matzehuels/thankyou/pkg/errors"
)

// PackageJSON parses package.json files. Only the top-level "dependencies"
// object is read; devDependencies and peerDependencies are ignored.
type PackageJSON struct{}

func (p *PackageJSON) Type() string { return "package.json" }

// Parse returns the entries of the "dependencies" object in file order.
// A value that is not a string yields an empty version. A duplicated name
// keeps its first position and its last value.
func (p *PackageJSON) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		// Valid JSON that is not an object declares no dependencies.
		if json.Valid(data) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	entries, err := orderedDeps(doc["dependencies"])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s dependencies", path)
	}
	return entries, nil
}

// orderedDeps walks a raw JSON object token by token so entries come back
// in the order they appear in the file. Anything other than an object
// (including a missing or null section) yields no entries.
func orderedDeps(raw json.RawMessage) ([]deps.Dependency, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil
	}

	var entries []deps.Dependency
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		version, _ := value.(string)

		if name == "" {
			continue
		}
		if i, ok := seen[name]; ok {
			entries[i].Version = version
			continue
		}
		seen[name] = len(entries)
		entries = append(entries, deps.Dependency{Name: name, Version: version})
	}
	return entries, nil
}
