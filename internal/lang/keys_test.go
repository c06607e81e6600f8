package lang

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCountLanguageKeysJSON(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "en_us.json")
	writeFile(t, path, `{"item.mod.sword": "Sword", "item.mod.shield": "Shield"}`)
	if got := CountLanguageKeys(path); got != 2 {
		t.Errorf("json key count = %d, want 2", got)
	}

	malformed := filepath.Join(dir, "broken.json")
	writeFile(t, malformed, `{"unterminated`)
	if got := CountLanguageKeys(malformed); got != 0 {
		t.Errorf("malformed json key count = %d, want 0", got)
	}

	array := filepath.Join(dir, "array.json")
	writeFile(t, array, `["not", "an", "object"]`)
	if got := CountLanguageKeys(array); got != 0 {
		t.Errorf("non-object json key count = %d, want 0", got)
	}
}

func TestCountLanguageKeysLang(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "en_us.lang")
	writeFile(t, path, "item.mod.sword=Sword\n\n# a comment\nitem.mod.shield=Shield\nno equals sign\n")
	if got := CountLanguageKeys(path); got != 2 {
		t.Errorf("lang key count = %d, want 2", got)
	}
}

func TestCountLanguageKeysOther(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "readme.txt")
	writeFile(t, path, "a=b\n")
	if got := CountLanguageKeys(path); got != 0 {
		t.Errorf("txt key count = %d, want 0", got)
	}

	if got := CountLanguageKeys(filepath.Join(dir, "missing.json")); got != 0 {
		t.Errorf("missing file key count = %d, want 0", got)
	}
}
