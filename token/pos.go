package token

import "strings"

// LineCol returns the 1-based line and column of the byte offset off in d.
// Columns count bytes.
func LineCol(d string, off int) (int, int) {
	off = max(0, min(off, len(d)))
	prefix := d[:off]
	line := strings.Count(prefix, "\n") + 1
	col := off - strings.LastIndexByte(prefix, '\n')
	return line, col
}

// clip returns at most n bytes of s without splitting a UTF-8 sequence.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
