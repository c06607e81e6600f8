package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// modrinthIndex mirrors the modrinth.index.json layout. Dependencies is
// kept raw so the object's key order can be recovered.
type modrinthIndex struct {
	Name         string          `json:"name"`
	VersionID    string          `json:"versionId"`
	Summary      string          `json:"summary"`
	Dependencies json.RawMessage `json:"dependencies"`
}

// dependency is one key/value pair from the dependencies object, in
// document order.
type dependency struct {
	key   string
	value string
}

// readModrinth parses modrinth.index.json. The loader is taken as the
// first dependency key other than "minecraft" and the loader version as
// the second dependency value positionally; when the pack declares more
// than one non-minecraft dependency the pairing is arbitrary.
func readModrinth(projectPath string) *ModpackManifest {
	content, err := os.ReadFile(filepath.Join(projectPath, "modrinth.index.json"))
	if err != nil {
		return nil
	}

	var idx modrinthIndex
	if err := json.Unmarshal(content, &idx); err != nil {
		return nil
	}
	if idx.Name == "" || idx.VersionID == "" || len(idx.Dependencies) == 0 {
		return nil
	}

	deps, err := decodeOrderedDependencies(idx.Dependencies)
	if err != nil {
		return nil
	}

	var mcVersion, loader string
	for _, dep := range deps {
		if dep.key == "minecraft" {
			if mcVersion == "" {
				mcVersion = dep.value
			}
		} else if loader == "" {
			loader = dep.key
		}
	}
	if mcVersion == "" || loader == "" || len(deps) < 2 {
		return nil
	}

	return &ModpackManifest{
		Name:             idx.Name,
		Version:          idx.VersionID,
		Description:      optional(idx.Summary),
		MinecraftVersion: mcVersion,
		Loader:           loader,
		LoaderVersion:    deps[1].value,
		Platform:         PlatformModrinth,
	}
}

// decodeOrderedDependencies walks the raw dependencies object token by
// token, preserving the key order encoding/json's map type would discard.
func decodeOrderedDependencies(raw json.RawMessage) ([]dependency, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var deps []dependency
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		deps = append(deps, dependency{key: key, value: value})
	}
	return deps, nil
}
