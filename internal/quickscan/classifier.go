// Package quickscan provides the lightweight classification-only scan: a
// recursive directory walk that sorts files into jar, language, and modpack
// buckets without running the full manifest/jar/language pipeline.
package quickscan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minelate/packscan/internal/lang"
)

// FileInfo describes one classified filesystem entry.
type FileInfo struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	IsDirectory  bool   `json:"is_directory"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Result aggregates a quick scan. TotalFiles counts every file visited,
// including files that land in no bucket.
type Result struct {
	TotalFiles   int        `json:"total_files"`
	JarFiles     []FileInfo `json:"jar_files"`
	LangFiles    []FileInfo `json:"lang_files"`
	ModpackFiles []FileInfo `json:"modpack_files"`
	Errors       []string   `json:"errors"`
}

// modpackFilenames are the pack-metadata filenames recognized by the
// modpack bucket, compared against the lowercased file name.
var modpackFilenames = map[string]struct{}{
	"manifest.json":       {},
	"modrinth.index.json": {},
	"pack.toml":           {},
	"instance.cfg":        {},
	"mmc-pack.json":       {},
	"modlist.html":        {},
}

// Scan walks dirPath recursively and classifies every file it can reach.
// Unreadable subdirectories are recorded in the result's error list and do
// not abort the rest of the walk.
func Scan(dirPath string) (*Result, error) {
	if _, err := os.Stat(dirPath); err != nil {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	result := &Result{Errors: []string{}}
	walk(dirPath, result)
	return result, nil
}

func walk(dir string, result *Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error scanning %s: %v", dir, err))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			walk(path, result)
			continue
		}

		result.TotalFiles++

		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error scanning %s: %v", path, err))
			continue
		}

		fi := FileInfo{
			Name:         entry.Name(),
			Path:         path,
			Size:         info.Size(),
			ModifiedTime: info.ModTime().String(),
		}

		switch {
		case strings.HasSuffix(entry.Name(), ".jar"):
			result.JarFiles = append(result.JarFiles, fi)
		case lang.IsLanguageFile(path):
			result.LangFiles = append(result.LangFiles, fi)
		case isModpackFile(entry.Name()):
			result.ModpackFiles = append(result.ModpackFiles, fi)
		}
	}
}

// isModpackFile reports whether name is one of the recognized pack-metadata
// filenames.
func isModpackFile(name string) bool {
	_, ok := modpackFilenames[strings.ToLower(name)]
	return ok
}
