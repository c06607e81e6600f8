package lang

import (
	"path/filepath"
	"testing"
)

func TestScanResourcePackLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "assets", "examplemod", "lang", "en_us.json"), `{"a": "1", "b": "2"}`)
	writeFile(t, filepath.Join(dir, "assets", "examplemod", "lang", "zh_cn.json"), `{"a": "1"}`)
	writeFile(t, filepath.Join(dir, "assets", "examplemod", "lang", "notes.txt"), "not a language file")
	writeFile(t, filepath.Join(dir, "assets", "othermod", "lang", "en_us.lang"), "k1=v1\nk2=v2\nk3=v3\n")
	writeFile(t, filepath.Join(dir, "assets", "nolang", "textures.json"), `{}`)

	entries := Scan(dir)
	if len(entries) != 3 {
		t.Fatalf("expected 3 language resources, got %d", len(entries))
	}

	byLocale := map[string]ResourceEntry{}
	for _, e := range entries {
		byLocale[e.Namespace+"/"+e.Locale] = e
	}

	en, ok := byLocale["examplemod/en_us"]
	if !ok {
		t.Fatal("missing examplemod/en_us entry")
	}
	if en.KeyCount != 2 {
		t.Errorf("en_us key count = %d, want 2", en.KeyCount)
	}
	if en.SourceType != "resourcepack" || en.Priority != 1 {
		t.Errorf("entry defaults = %q %d", en.SourceType, en.Priority)
	}

	other, ok := byLocale["othermod/en_us"]
	if !ok {
		t.Fatal("missing othermod/en_us entry")
	}
	if other.KeyCount != 3 {
		t.Errorf("othermod key count = %d, want 3", other.KeyCount)
	}
}

func TestScanNoAssets(t *testing.T) {
	if entries := Scan(t.TempDir()); len(entries) != 0 {
		t.Errorf("expected no entries without assets dir, got %d", len(entries))
	}
}

func TestIsLanguageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"assets/mod/lang/en_us.json", true},
		{"assets/mod/lang/en_us.lang", true},
		{"i18n/strings.json", true},
		{"assets/mod/models/block.json", false},
		{"assets/mod/lang/readme.txt", false},
		{"config/lang/settings.toml", false},
	}

	for _, tt := range tests {
		if got := IsLanguageFile(tt.path); got != tt.want {
			t.Errorf("IsLanguageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
