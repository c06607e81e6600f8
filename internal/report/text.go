package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minelate/packscan/internal/engine"
)

const (
	doubleLine = "═" // ═
	singleLine = "─" // ─
	lineWidth  = 50
)

// TextReporter outputs plain terminal text.
type TextReporter struct {
	// Verbose controls detail level: 0=summary only, 1=+jar list, 2=+language files.
	Verbose int
}

// Format returns "text".
func (r *TextReporter) Format() string {
	return "text"
}

// Generate writes formatted scan results to w.
func (r *TextReporter) Generate(ctx context.Context, result *engine.ScanResult, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := &strings.Builder{}

	doubleBar := strings.Repeat(doubleLine, lineWidth)
	singleBar := strings.Repeat(singleLine, lineWidth)

	fmt.Fprintln(b, doubleBar)
	fmt.Fprintln(b, "packscan - Project Scan Results")
	fmt.Fprintln(b, doubleBar)

	fmt.Fprintf(b, "Scan ID: %s\n", result.ScanID)
	fmt.Fprintf(b, "Project: %s\n", result.ProjectPath)
	if result.ScanCompletedAt != nil {
		duration := result.ScanCompletedAt.Sub(result.ScanStartedAt)
		fmt.Fprintf(b, "Duration: %.1fs\n", duration.Seconds())
	}

	if m := result.ModpackManifest; m != nil {
		fmt.Fprintln(b, singleBar)
		fmt.Fprintf(b, "Modpack: %s v%s (%s)\n", m.Name, m.Version, m.Platform)
		fmt.Fprintf(b, "Minecraft: %s\n", m.MinecraftVersion)
		fmt.Fprintf(b, "Loader: %s %s\n", m.Loader, m.LoaderVersion)
		if m.Author != nil {
			fmt.Fprintf(b, "Author: %s\n", *m.Author)
		}
	}

	fmt.Fprintln(b, singleBar)
	fmt.Fprintf(b, "Mods: %d\n", result.TotalMods)
	fmt.Fprintf(b, "Language files: %d\n", result.TotalLanguageFiles)
	fmt.Fprintf(b, "Translatable keys: %d\n", result.TotalTranslatableKeys)
	if len(result.SupportedLocales) > 0 {
		fmt.Fprintf(b, "Locales: %s\n", strings.Join(result.SupportedLocales, ", "))
	}

	if r.Verbose >= 1 && len(result.ModJars) > 0 {
		fmt.Fprintln(b, singleBar)
		fmt.Fprintln(b, "Mod jars:")
		for _, j := range result.ModJars {
			fmt.Fprintf(b, "  %-40s %s\n", j.DisplayName, j.Version)
		}
	}

	if r.Verbose >= 2 && len(result.LanguageResources) > 0 {
		fmt.Fprintln(b, singleBar)
		fmt.Fprintln(b, "Language resources:")
		for _, lr := range result.LanguageResources {
			fmt.Fprintf(b, "  %s/%s (%d keys)\n", lr.Namespace, lr.Locale, lr.KeyCount)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(b, singleBar)
		for _, warning := range result.Warnings {
			fmt.Fprintf(b, "[!] %s\n", warning)
		}
	}
	if len(result.Errors) > 0 {
		fmt.Fprintln(b, singleBar)
		for _, e := range result.Errors {
			fmt.Fprintf(b, "[x] %s\n", e)
		}
	}

	fmt.Fprintln(b, doubleBar)

	_, err := io.WriteString(w, b.String())
	return err
}
