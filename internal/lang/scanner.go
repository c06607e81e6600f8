// Package lang walks resource-pack asset trees and inventories translatable
// language files. Language resources packed inside jar archives are not
// scanned; that requires archive decompression and remains an extension
// point.
package lang

import (
	"os"
	"path/filepath"
	"strings"
)

// ResourceEntry describes one language file discovered under a namespace's
// lang directory.
type ResourceEntry struct {
	Namespace  string `json:"namespace"`
	Locale     string `json:"locale"`
	SourcePath string `json:"source_path"`
	SourceType string `json:"source_type"`
	KeyCount   int    `json:"key_count"`
	Priority   int    `json:"priority"`
}

// Scan returns every language resource found under the resource-pack layout
// assets/<namespace>/lang/<locale>.{json,lang}.
func Scan(projectPath string) []ResourceEntry {
	var entries []ResourceEntry

	assetsDir := filepath.Join(projectPath, "assets")
	namespaces, err := os.ReadDir(assetsDir)
	if err != nil {
		return entries
	}

	for _, ns := range namespaces {
		if !ns.IsDir() {
			continue
		}

		langDir := filepath.Join(assetsDir, ns.Name(), "lang")
		files, err := os.ReadDir(langDir)
		if err != nil {
			continue
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}
			path := filepath.Join(langDir, file.Name())
			if !IsLanguageFile(path) {
				continue
			}
			entries = append(entries, newResourceEntry(path, ns.Name(), "resourcepack"))
		}
	}

	return entries
}

// IsLanguageFile reports whether path names a translatable language file:
// a .json or .lang extension on a path mentioning "lang" or "i18n". The
// same predicate serves both the resource-pack walk (where the lang/
// directory already satisfies the substring check) and the quick-scan
// classifier.
func IsLanguageFile(path string) bool {
	switch filepath.Ext(path) {
	case ".json", ".lang":
	default:
		return false
	}
	return strings.Contains(path, "lang") || strings.Contains(path, "i18n")
}

func newResourceEntry(path, namespace, sourceType string) ResourceEntry {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return ResourceEntry{
		Namespace:  namespace,
		Locale:     stem,
		SourcePath: path,
		SourceType: sourceType,
		KeyCount:   CountLanguageKeys(path),
		Priority:   1,
	}
}
