package jar

import "testing"

func TestParseJarFilename(t *testing.T) {
	tests := []struct {
		stem        string
		wantName    string
		wantVersion string
	}{
		{"examplemod-1.2.3", "examplemod", "1.2.3"},
		{"randomfile", "randomfile", "1.0.0"},
		{"my_mod_v2.0.1", "my mod", "2.0.1"},
		{"some_mod_3.1", "some mod", "3.1"},
		{"jei-1.20.1", "jei", "1.20.1"},
		{"jei-1.20.1-forge-15.2.0.27", "jei 1.20.1 forge 15.2.0.27", "1.0.0"},
		{"mod-name-without-version", "mod name without version", "1.0.0"},
		{"trailing-dash-", "trailing dash ", "1.0.0"},
	}

	for _, tt := range tests {
		name, version := ParseJarFilename(tt.stem)
		if name != tt.wantName {
			t.Errorf("ParseJarFilename(%q) name = %q, want %q", tt.stem, name, tt.wantName)
		}
		if version != tt.wantVersion {
			t.Errorf("ParseJarFilename(%q) version = %q, want %q", tt.stem, version, tt.wantVersion)
		}
	}
}

func TestIsVersionLike(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1.2", true},
		{"1.2.3", true},
		{"1.20.1", true},
		{"abc", false},
		{"", false},
		{"v1.2", false},     // leading non-digit
		{"12", false},       // no dot
		{"1.", false},       // too short for digit-dot-digit
		{"1.x", false},      // dot not followed by digit
		{"10.2.3", false},   // second char is not the dot
		{"2.0-beta", true},  // prefix pattern is all that matters
	}

	for _, tt := range tests {
		if got := IsVersionLike(tt.in); got != tt.want {
			t.Errorf("IsVersionLike(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Example Mod", "example_mod"},
		{"JustWorks", "justworks"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		if got := ModID(tt.in); got != tt.want {
			t.Errorf("ModID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
