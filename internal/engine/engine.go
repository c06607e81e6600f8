// Package engine provides the core scan orchestration pipeline.
package engine

import (
	"time"

	"github.com/minelate/packscan/internal/jar"
	"github.com/minelate/packscan/internal/lang"
	"github.com/minelate/packscan/internal/manifest"
)

// ScanProgress is one progress notification emitted as the orchestrator
// advances through its phases. Emission order is strictly increasing
// within a single scan; there is no cross-scan ordering guarantee.
type ScanProgress struct {
	ScanID             string    `json:"scan_id"`
	Phase              string    `json:"phase"`
	Progress           float64   `json:"progress"`
	Message            string    `json:"message"`
	CurrentFile        *string   `json:"current_file"`
	ProcessedFiles     int       `json:"processed_files"`
	TotalFiles         int       `json:"total_files"`
	EstimatedRemaining *int      `json:"estimated_remaining"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ScanResult is the aggregate produced by a completed scan.
//
// Invariants: TotalTranslatableKeys equals the sum of KeyCount over
// LanguageResources, SupportedLocales is the sorted set of their distinct
// locales, and TotalMods equals len(ModJars).
type ScanResult struct {
	ScanID                string                    `json:"scan_id"`
	ProjectPath           string                    `json:"project_path"`
	ScanStartedAt         time.Time                 `json:"scan_started_at"`
	ScanCompletedAt       *time.Time                `json:"scan_completed_at"`
	ModpackManifest       *manifest.ModpackManifest `json:"modpack_manifest"`
	ModJars               []jar.Metadata            `json:"mod_jars"`
	LanguageResources     []lang.ResourceEntry      `json:"language_resources"`
	TotalMods             int                       `json:"total_mods"`
	TotalLanguageFiles    int                       `json:"total_language_files"`
	TotalTranslatableKeys int                       `json:"total_translatable_keys"`
	SupportedLocales      []string                  `json:"supported_locales"`
	Warnings              []string                  `json:"warnings"`
	Errors                []string                  `json:"errors"`
}

// phase pairs a pipeline phase with its fixed completion percentage and
// progress message.
type phase struct {
	name    string
	percent float64
	message string
}

// The six ordered phases plus the terminal marker, executed strictly in
// sequence with no branching back.
var (
	phaseDetecting  = phase{"detecting_project_type", 0, "Detecting project type..."}
	phaseModpack    = phase{"scanning_modpack", 10, "Scanning modpack manifest..."}
	phaseMods       = phase{"scanning_mods", 30, "Scanning mod JAR files..."}
	phaseLanguage   = phase{"scanning_language_resources", 60, "Scanning language resources..."}
	phaseStatistics = phase{"generating_statistics", 80, "Generating statistics..."}
	phaseValidation = phase{"validation", 95, "Validating scan results..."}
	phaseCompleted  = phase{"completed", 100, "Scan completed successfully!"}
)
