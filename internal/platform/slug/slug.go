package slug

import (
	"strings"
	"unicode"
)

// Make lowercases input and collapses every run of non letter/digit
// characters into a single dash. Empty results become "client".
func Make(input string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(sb.String(), "-")
	if s == "" {
		return "client"
	}
	return s
}
