package jar

import "strings"

// versionSeparators are tried in order; for each, the rightmost occurrence
// in the file stem splits name from version candidate.
var versionSeparators = []string{"-", "_v", "_"}

// ParseJarFilename derives a display name and version from a jar file stem.
// The first separator whose suffix looks like a version wins; otherwise the
// whole stem becomes the name and the version defaults to "1.0.0".
func ParseJarFilename(stem string) (name, version string) {
	for _, sep := range versionSeparators {
		pos := strings.LastIndex(stem, sep)
		if pos < 0 {
			continue
		}
		candidate := stem[pos+len(sep):]
		if IsVersionLike(candidate) {
			return cleanName(stem[:pos]), candidate
		}
	}
	return cleanName(stem), "1.0.0"
}

// IsVersionLike reports whether s resembles a version number: it must start
// with an ASCII digit, contain a dot, and open with a digit-dot-digit
// pattern. Strings shorter than three characters never qualify.
func IsVersionLike(s string) bool {
	if s == "" {
		return false
	}
	if !isASCIIDigit(s[0]) {
		return false
	}
	if !strings.Contains(s, ".") {
		return false
	}
	if len(s) < 3 {
		return false
	}
	return isASCIIDigit(s[0]) && s[1] == '.' && isASCIIDigit(s[2])
}

// ModID derives a stable mod identifier from a jar file stem.
func ModID(stem string) string {
	return strings.ReplaceAll(strings.ToLower(stem), " ", "_")
}

func cleanName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
