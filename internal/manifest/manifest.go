// Package manifest detects and reads modpack manifests in the four
// supported distribution formats. Detection tries each format probe in a
// fixed priority order and returns the first manifest that parses
// completely; a malformed or incomplete probe file is skipped silently so
// a later format can still match.
package manifest

import "path/filepath"

// Platform names reported in the Platform field.
const (
	PlatformCurseForge = "CurseForge"
	PlatformModrinth   = "Modrinth"
	PlatformPackwiz    = "Packwiz"
	PlatformMultiMC    = "MultiMC"
)

// ModpackManifest is the unified record produced by exactly one of the
// format-specific readers. Platform identifies which reader produced it.
type ModpackManifest struct {
	Name             string  `json:"name"`
	Version          string  `json:"version"`
	Author           *string `json:"author"`
	Description      *string `json:"description"`
	MinecraftVersion string  `json:"minecraft_version"`
	Loader           string  `json:"loader"`
	LoaderVersion    string  `json:"loader_version"`
	Platform         string  `json:"platform"`
	License          *string `json:"license"`
}

// reader probes one manifest format at the project root.
type reader func(projectPath string) *ModpackManifest

// readers are tried in priority order; the first complete parse wins.
var readers = []reader{
	readCurseForge,
	readModrinth,
	readPackwiz,
	readMultiMC,
}

// ProbeFiles lists the supported manifest filenames, matched case-sensitively
// at the project root, in detection priority order.
var ProbeFiles = []string{
	"manifest.json",       // CurseForge
	"modrinth.index.json", // Modrinth
	"pack.toml",           // Packwiz
	"instance.cfg",        // MultiMC
}

// Detect returns the manifest for the highest-priority format that parses,
// or nil when no probe file exists or none parses completely.
func Detect(projectPath string) *ModpackManifest {
	for _, read := range readers {
		if m := read(projectPath); m != nil {
			return m
		}
	}
	return nil
}

// HasManifest reports whether any known manifest probe file exists at the
// project root.
func HasManifest(projectPath string) bool {
	for _, name := range ProbeFiles {
		if fileExists(filepath.Join(projectPath, name)) {
			return true
		}
	}
	return false
}
