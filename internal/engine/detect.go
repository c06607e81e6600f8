package engine

import (
	"os"
	"path/filepath"

	"github.com/minelate/packscan/internal/manifest"
)

// DetectProjectType classifies a directory by checking, in order: a known
// manifest file, a mods/ subdirectory, then resource-pack markers. It
// returns one of "modpack", "mods", "resourcepack", or "unknown".
func DetectProjectType(dirPath string) string {
	if manifest.HasManifest(dirPath) {
		return "modpack"
	}

	if dirExists(filepath.Join(dirPath, "mods")) {
		return "mods"
	}

	if dirExists(filepath.Join(dirPath, "assets")) || exists(filepath.Join(dirPath, "pack.mcmeta")) {
		return "resourcepack"
	}

	return "unknown"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
