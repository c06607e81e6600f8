package jar

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanModsAndRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mods", "alpha-1.0.0.jar"))
	writeFile(t, filepath.Join(dir, "mods", "notes.txt"))
	writeFile(t, filepath.Join(dir, "beta-2.1.0.jar"))

	jars := Scan(dir)
	if len(jars) != 2 {
		t.Fatalf("expected 2 jars, got %d", len(jars))
	}
	if jars[0].DisplayName != "alpha" || jars[0].Version != "1.0.0" {
		t.Errorf("mods entry = %q %q", jars[0].DisplayName, jars[0].Version)
	}
	if jars[1].DisplayName != "beta" || jars[1].Version != "2.1.0" {
		t.Errorf("root entry = %q %q", jars[1].DisplayName, jars[1].Version)
	}
}

func TestScanDuplicateJarListedTwice(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mods", "samemod-1.0.0.jar"))
	writeFile(t, filepath.Join(dir, "samemod-1.0.0.jar"))

	jars := Scan(dir)
	if len(jars) != 2 {
		t.Fatalf("expected duplicate jar listed twice, got %d entries", len(jars))
	}
	if jars[0].ModID != jars[1].ModID {
		t.Errorf("entries diverge: %q vs %q", jars[0].ModID, jars[1].ModID)
	}
}

func TestScanMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	if jars := Scan(filepath.Join(dir, "nope")); len(jars) != 0 {
		t.Errorf("expected no jars for missing directory, got %d", len(jars))
	}
}

func TestFromFilename(t *testing.T) {
	m := FromFilename("Example Mod-1.2.3.jar")

	if m.ModID != "example_mod-1.2.3" {
		t.Errorf("ModID = %q", m.ModID)
	}
	if m.DisplayName != "Example Mod" {
		t.Errorf("DisplayName = %q", m.DisplayName)
	}
	if m.Version != "1.2.3" {
		t.Errorf("Version = %q", m.Version)
	}
	if m.Loader != "unknown" || m.Environment != "universal" {
		t.Errorf("defaults = %q %q", m.Loader, m.Environment)
	}
	if len(m.Authors) != 1 || m.Authors[0] != "Unknown" {
		t.Errorf("Authors = %v", m.Authors)
	}
	if m.Description == nil || *m.Description != "Mod from Example Mod-1.2.3" {
		t.Errorf("Description = %v", m.Description)
	}
	if m.Homepage != nil {
		t.Errorf("Homepage = %v, want nil", *m.Homepage)
	}
}
