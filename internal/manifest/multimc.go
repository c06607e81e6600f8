package manifest

import (
	"os"
	"path/filepath"
	"strings"
)

// readMultiMC reads instance.cfg using line-oriented `key=value`
// extraction. MultiMC instance files record no version or loader details
// beyond the intended Minecraft version, so the remaining fields carry
// defaults; Forge is assumed for the loader.
func readMultiMC(projectPath string) *ModpackManifest {
	content, err := os.ReadFile(filepath.Join(projectPath, "instance.cfg"))
	if err != nil {
		return nil
	}
	text := string(content)

	return &ModpackManifest{
		Name:             extractCfgValue(text, "name", "MultiMC Instance"),
		Version:          "1.0.0",
		MinecraftVersion: extractCfgValue(text, "IntendedVersion", "1.20.1"),
		Loader:           "Forge",
		LoaderVersion:    "latest",
		Platform:         PlatformMultiMC,
	}
}

// extractCfgValue finds the first `key=value` line and returns the value,
// or fallback when the key is absent.
func extractCfgValue(content, key, fallback string) string {
	prefix := key + "="
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix); ok {
			return rest
		}
	}
	return fallback
}
