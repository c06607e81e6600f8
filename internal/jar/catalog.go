// Package jar enumerates candidate mod jar files and derives lightweight
// metadata from their filenames. True loader detection would require
// opening the archives and is out of scope here.
package jar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Metadata describes a single discovered mod jar. All fields are derived
// from the filename alone.
type Metadata struct {
	ModID       string   `json:"mod_id"`
	DisplayName string   `json:"display_name"`
	Version     string   `json:"version"`
	Loader      string   `json:"loader"`
	Authors     []string `json:"authors"`
	Homepage    *string  `json:"homepage"`
	Description *string  `json:"description"`
	Environment string   `json:"environment"`
}

// Scan returns metadata for every jar found directly under mods/ and
// directly under the project root, in that order. A jar present in both
// locations is listed twice; the catalog does not deduplicate.
func Scan(projectPath string) []Metadata {
	var jars []Metadata

	jars = append(jars, scanDir(filepath.Join(projectPath, "mods"))...)
	jars = append(jars, scanDir(projectPath)...)

	return jars
}

// scanDir collects jar metadata for the immediate children of dir. A
// missing or unreadable directory yields no entries.
func scanDir(dir string) []Metadata {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var jars []Metadata
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jar" {
			continue
		}
		jars = append(jars, FromFilename(entry.Name()))
	}
	return jars
}

// FromFilename builds jar metadata from a bare filename.
func FromFilename(filename string) Metadata {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	displayName, version := ParseJarFilename(stem)
	description := fmt.Sprintf("Mod from %s", stem)

	return Metadata{
		ModID:       ModID(stem),
		DisplayName: displayName,
		Version:     version,
		Loader:      "unknown",
		Authors:     []string{"Unknown"},
		Description: &description,
		Environment: "universal",
	}
}
