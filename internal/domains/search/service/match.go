package service

import (
	"strings"
	"unicode/utf8"
)

// indexFold returns the byte span of the first case-insensitive occurrence
// of substr in s at or after byte offset from, or -1, -1.
func indexFold(s, substr string, from int) (int, int) {
	if substr == "" {
		return from, from
	}
	n := utf8.RuneCountInString(substr)
	for i := from; i < len(s); {
		j, k := i, 0
		for k < n && j < len(s) {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			k++
		}
		if k < n {
			break
		}
		if strings.EqualFold(s[i:j], substr) {
			return i, j
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// containsFold reports whether substr occurs in s ignoring case.
func containsFold(s, substr string) bool {
	start, _ := indexFold(s, substr, 0)
	return start >= 0
}

// positionFold is the byte offset of the first case-insensitive occurrence, -1 when absent.
func positionFold(s, substr string) int {
	start, _ := indexFold(s, substr, 0)
	return start
}

// highlightFold wraps every non-overlapping case-insensitive occurrence of substr.
// The matched fragment keeps the casing it has in s.
func highlightFold(s, substr, open, close string) string {
	if substr == "" {
		return s
	}

	var b strings.Builder
	pos := 0
	for {
		start, end := indexFold(s, substr, pos)
		if start < 0 {
			break
		}
		b.WriteString(s[pos:start])
		b.WriteString(open)
		b.WriteString(s[start:end])
		b.WriteString(close)
		pos = end
	}
	b.WriteString(s[pos:])
	return b.String()
}
