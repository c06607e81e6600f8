package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// curseForgeManifest mirrors the CurseForge manifest.json layout.
type curseForgeManifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Minecraft   struct {
		Version    string `json:"version"`
		ModLoaders []struct {
			ID      string `json:"id"`
			Primary bool   `json:"primary"`
		} `json:"modLoaders"`
	} `json:"minecraft"`
}

// readCurseForge parses manifest.json. CurseForge packs do not record the
// loader family directly, so it is assumed to be Forge; the modLoaders id
// carries the loader version string.
func readCurseForge(projectPath string) *ModpackManifest {
	content, err := os.ReadFile(filepath.Join(projectPath, "manifest.json"))
	if err != nil {
		return nil
	}

	var cf curseForgeManifest
	if err := json.Unmarshal(content, &cf); err != nil {
		return nil
	}
	if cf.Name == "" || cf.Version == "" || cf.Minecraft.Version == "" || len(cf.Minecraft.ModLoaders) == 0 {
		return nil
	}

	return &ModpackManifest{
		Name:             cf.Name,
		Version:          cf.Version,
		Author:           optional(cf.Author),
		Description:      optional(cf.Description),
		MinecraftVersion: cf.Minecraft.Version,
		Loader:           "Forge",
		LoaderVersion:    cf.Minecraft.ModLoaders[0].ID,
		Platform:         PlatformCurseForge,
	}
}

// optional maps an empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
