package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/minelate/packscan/internal/jar"
	"github.com/minelate/packscan/internal/lang"
	"github.com/minelate/packscan/internal/manifest"
	"github.com/minelate/packscan/internal/registry"
)

// ScanConfig holds configuration for a scanner.
type ScanConfig struct {
	Verbose int // Verbosity level 0-3
}

// DefaultScanConfig returns sensible defaults.
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{}
}

// Scanner orchestrates the full scan pipeline and owns the session
// registry scans are recorded in.
type Scanner struct {
	registry *registry.Registry
	config   *ScanConfig
	logger   *slog.Logger

	// Progress callback
	onProgress func(ScanProgress)
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithProgressCallback sets a function called with each progress
// notification. Emissions are best-effort, one-way broadcasts.
func WithProgressCallback(fn func(ScanProgress)) ScannerOption {
	return func(s *Scanner) {
		s.onProgress = fn
	}
}

// WithLogger overrides the scanner's logger.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a scanner backed by reg.
func NewScanner(reg *registry.Registry, config *ScanConfig, opts ...ScannerOption) *Scanner {
	if config == nil {
		config = DefaultScanConfig()
	}

	// Create logger with configured verbosity level.
	logLevel := slog.LevelError
	switch {
	case config.Verbose >= 3:
		logLevel = slog.LevelDebug
	case config.Verbose >= 2:
		logLevel = slog.LevelInfo
	case config.Verbose >= 1:
		logLevel = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: logLevel},
	))

	s := &Scanner{
		registry: reg,
		config:   config,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetProgressCallback sets a function called with progress notifications.
func (s *Scanner) SetProgressCallback(fn func(ScanProgress)) {
	s.onProgress = fn
}

// StartScan launches a scan of projectPath as an independent unit of work
// and returns its scan id immediately. The caller polls Result or Status
// for the outcome. A nonexistent path is the only error surfaced before
// work starts.
func (s *Scanner) StartScan(ctx context.Context, projectPath string) (string, error) {
	if _, err := os.Stat(projectPath); err != nil {
		return "", fmt.Errorf("project path does not exist: %s", projectPath)
	}

	scanID := uuid.New().String()
	if err := s.registry.Begin(scanID, projectPath); err != nil {
		return "", err
	}

	go func() {
		result, err := s.run(ctx, scanID, projectPath)
		if err != nil {
			s.logger.Warn("scan failed", "scan_id", scanID, "error", err)
			s.registry.Fail(scanID, err.Error())
			return
		}
		s.registry.Complete(scanID, result)
	}()

	return scanID, nil
}

// Scan runs the full pipeline synchronously and records the session in the
// registry like StartScan does.
func (s *Scanner) Scan(ctx context.Context, projectPath string) (*ScanResult, error) {
	if _, err := os.Stat(projectPath); err != nil {
		return nil, fmt.Errorf("project path does not exist: %s", projectPath)
	}

	scanID := uuid.New().String()
	if err := s.registry.Begin(scanID, projectPath); err != nil {
		return nil, err
	}

	result, err := s.run(ctx, scanID, projectPath)
	if err != nil {
		s.registry.Fail(scanID, err.Error())
		return nil, err
	}
	s.registry.Complete(scanID, result)
	return result, nil
}

// Result returns the completed result for scanID. Unknown ids yield
// registry.ErrNotFound, running scans registry.ErrRunning, and failed
// scans the recorded reason.
func (s *Scanner) Result(scanID string) (*ScanResult, error) {
	v, err := s.registry.Result(scanID)
	if err != nil {
		return nil, err
	}
	result, ok := v.(*ScanResult)
	if !ok {
		return nil, registry.ErrNotFound
	}
	return result, nil
}

// Status returns the session record for scanID.
func (s *Scanner) Status(scanID string) (*registry.Session, bool) {
	return s.registry.Get(scanID)
}

// run executes the six ordered phases.
//
// Pipeline:
//  1. Detect project type (decides whether manifest scanning runs at all)
//  2. Scan modpack manifest
//  3. Scan mod jar files
//  4. Scan language resources
//  5. Compute totals
//  6. Validation (placeholder, no checks wired yet)
func (s *Scanner) run(ctx context.Context, scanID, projectPath string) (*ScanResult, error) {
	startTime := time.Now().UTC()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan cancelled before start: %w", err)
	}

	s.emit(scanID, phaseDetecting, nil)
	isModpack := manifest.HasManifest(projectPath)
	s.logger.Debug("project type detected", "scan_id", scanID, "modpack", isModpack)

	s.emit(scanID, phaseModpack, nil)
	var packManifest *manifest.ModpackManifest
	if isModpack {
		packManifest = manifest.Detect(projectPath)
	}

	s.emit(scanID, phaseMods, nil)
	modJars := jar.Scan(projectPath)

	s.emit(scanID, phaseLanguage, nil)
	languageResources := lang.Scan(projectPath)

	s.emit(scanID, phaseStatistics, nil)
	totalKeys := 0
	localeSet := make(map[string]struct{})
	for _, r := range languageResources {
		totalKeys += r.KeyCount
		localeSet[r.Locale] = struct{}{}
	}
	supportedLocales := make([]string, 0, len(localeSet))
	for locale := range localeSet {
		supportedLocales = append(supportedLocales, locale)
	}
	sort.Strings(supportedLocales)

	s.emit(scanID, phaseValidation, nil)

	completedAt := time.Now().UTC()
	result := &ScanResult{
		ScanID:                scanID,
		ProjectPath:           projectPath,
		ScanStartedAt:         startTime,
		ScanCompletedAt:       &completedAt,
		ModpackManifest:       packManifest,
		ModJars:               modJars,
		LanguageResources:     languageResources,
		TotalMods:             len(modJars),
		TotalLanguageFiles:    len(languageResources),
		TotalTranslatableKeys: totalKeys,
		SupportedLocales:      supportedLocales,
		Warnings:              []string{},
		Errors:                []string{},
	}

	remaining := 0
	s.emit(scanID, phaseCompleted, &remaining)

	return result, nil
}

// emit sends a progress notification via the callback if one is set.
func (s *Scanner) emit(scanID string, p phase, estimatedRemaining *int) {
	if s.onProgress == nil {
		return
	}
	s.onProgress(ScanProgress{
		ScanID:             scanID,
		Phase:              p.name,
		Progress:           p.percent,
		Message:            p.message,
		ProcessedFiles:     int(p.percent),
		TotalFiles:         100,
		EstimatedRemaining: estimatedRemaining,
		UpdatedAt:          time.Now().UTC(),
	})
}
