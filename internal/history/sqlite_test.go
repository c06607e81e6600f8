package history

import (
	"context"
	"testing"
	"time"

	"github.com/minelate/packscan/internal/engine"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testResult(scanID, projectPath string) *engine.ScanResult {
	completed := time.Now().UTC()
	return &engine.ScanResult{
		ScanID:                scanID,
		ProjectPath:           projectPath,
		ScanStartedAt:         completed.Add(-time.Second),
		ScanCompletedAt:       &completed,
		TotalMods:             3,
		TotalLanguageFiles:    2,
		TotalTranslatableKeys: 42,
		SupportedLocales:      []string{"en_us", "zh_cn"},
		Warnings:              []string{},
		Errors:                []string{},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testResult("scan-1", "/tmp/pack")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	record, err := store.LoadByID(ctx, "scan-1")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if record == nil {
		t.Fatal("record not found after save")
	}
	if record.ID != "scan-1" || record.ProjectPath != "/tmp/pack" {
		t.Errorf("record = %q %q", record.ID, record.ProjectPath)
	}
	if record.Result.TotalTranslatableKeys != 42 {
		t.Errorf("keys = %d, want 42", record.Result.TotalTranslatableKeys)
	}
	if record.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestLoadByIDMissing(t *testing.T) {
	store := newTestStore(t)

	record, err := store.LoadByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if record != nil {
		t.Errorf("record = %+v, want nil", record)
	}
}

func TestSaveUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testResult("scan-1", "/tmp/a")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	updated := testResult("scan-1", "/tmp/b")
	updated.TotalMods = 7
	if err := store.Save(ctx, updated); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	if summaries[0].ProjectPath != "/tmp/b" || summaries[0].TotalMods != 7 {
		t.Errorf("summary = %+v", summaries[0])
	}
}

func TestSaveRejectsEmptyScanID(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(context.Background(), testResult("", "/tmp/pack")); err == nil {
		t.Error("expected an error for an empty scan id")
	}
}

func TestListAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"scan-1", "scan-2", "scan-3"} {
		if err := store.Save(ctx, testResult(id, "/tmp/"+id)); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}

	if err := store.Delete(ctx, "scan-2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	summaries, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 2 {
		t.Errorf("summaries after delete = %d, want 2", len(summaries))
	}
	for _, s := range summaries {
		if s.ID == "scan-2" {
			t.Error("deleted scan still listed")
		}
	}
}
