package lang

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// CountLanguageKeys counts the translatable keys in a language file. JSON
// files contribute their top-level object keys; .lang files contribute
// every non-blank, non-comment line containing '='. Unreadable or malformed
// files count zero keys rather than raising an error.
func CountLanguageKeys(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	switch filepath.Ext(path) {
	case ".json":
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(content, &obj); err != nil {
			return 0
		}
		return len(obj)
	case ".lang":
		count := 0
		for _, line := range strings.Split(string(content), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			if strings.Contains(trimmed, "=") {
				count++
			}
		}
		return count
	}
	return 0
}
