// Package history provides persistence for completed scan results,
// allowing past scans to be listed and reviewed.
package history

import (
	"context"
	"time"

	"github.com/minelate/packscan/internal/engine"
)

// Record is a persisted scan result.
type Record struct {
	ID          string             `json:"id"`
	ProjectPath string             `json:"project_path"`
	Result      *engine.ScanResult `json:"result"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Summary is a lightweight scan overview for listings.
type Summary struct {
	ID                    string    `json:"id"`
	ProjectPath           string    `json:"project_path"`
	TotalMods             int       `json:"total_mods"`
	TotalTranslatableKeys int       `json:"total_translatable_keys"`
	CreatedAt             time.Time `json:"created_at"`
}

// Store persists and retrieves scan records.
type Store interface {
	Save(ctx context.Context, result *engine.ScanResult) error
	LoadByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]*Summary, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
