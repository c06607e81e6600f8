package manifest

import (
	"os"
	"path/filepath"
	"strings"
)

// readPackwiz reads pack.toml using line-oriented key extraction. This is
// deliberately not a TOML parser: Packwiz packs keep the keys we need as
// simple top-level `key = "value"` lines, and any field that cannot be
// extracted falls back to a default.
func readPackwiz(projectPath string) *ModpackManifest {
	content, err := os.ReadFile(filepath.Join(projectPath, "pack.toml"))
	if err != nil {
		return nil
	}
	text := string(content)

	return &ModpackManifest{
		Name:             extractTOMLValue(text, "name", "Packwiz Modpack"),
		Version:          extractTOMLValue(text, "version", "1.0.0"),
		Author:           optional(extractTOMLValue(text, "author", "")),
		MinecraftVersion: extractTOMLValue(text, "mc-version", "1.20.1"),
		Loader:           extractTOMLValue(text, "mod-loader", "fabric"),
		LoaderVersion:    extractTOMLValue(text, "loader-version", "latest"),
		Platform:         PlatformPackwiz,
	}
}

// extractTOMLValue finds the first `key = "value"` line and returns the
// unquoted value, or fallback when the key is absent.
func extractTOMLValue(content, key, fallback string) string {
	prefix := key + " = "
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix); ok {
			return strings.Trim(rest, `"`)
		}
	}
	return fallback
}
