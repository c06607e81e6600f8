package report

import (
	"context"
	"encoding/json"
	"io"

	"github.com/minelate/packscan/internal/engine"
)

// JSONReporter outputs structured JSON.
type JSONReporter struct {
	// Compact outputs single-line JSON when true (no indentation).
	Compact bool
}

// Format returns "json".
func (r *JSONReporter) Format() string {
	return "json"
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	SchemaVersion string             `json:"schema_version"`
	Tool          string             `json:"tool"`
	Scan          *engine.ScanResult `json:"scan"`
}

// Generate writes JSON scan results to w.
func (r *JSONReporter) Generate(ctx context.Context, result *engine.ScanResult, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := jsonOutput{
		SchemaVersion: "1.0",
		Tool:          "packscan",
		Scan:          result,
	}

	enc := json.NewEncoder(w)
	if !r.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(output)
}
