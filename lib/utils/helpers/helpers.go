package helpers

import (
	"strings"
	"unicode/utf8"
)

const HeaderLogIgnore = "X-Log-Ignore"

// TruncateRunes обрезает s до limit рун, limit <= 0 - без ограничения
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for k := range s {
		if count == limit {
			return s[:k]
		}
		count++
	}
	return s
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
