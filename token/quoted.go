package token

import "strings"

// scanString returns the end offset of the quoted string token starting at
// s[i], or i if the quotes do not form a complete token.
func scanString(s string, i int) int {
	n := len(s)
	if i >= n {
		return i
	}
	q := s[i]
	if q != '\'' && q != '"' {
		return i
	}
	if end := scanBlockString(s, i); end > i {
		return end
	}
	j := i + 1
	for j < n {
		c := s[j]
		switch {
		case c == '\n':
			return i
		case c == q && q == '\'':
			if j+1 < n && s[j+1] == '\'' {
				j += 2
				continue
			}
			return j + 1
		case c == q:
			return j + 1
		case c == '\\' && q == '"':
			if j+1 >= n || s[j+1] == '\n' {
				return i
			}
			j += 2
		default:
			j++
		}
	}
	return i
}

// scanBlockString matches a triple quoted string: the opening delimiter is
// followed by a newline and the body ends at the first line consisting of
// indentation and the closing delimiter.
func scanBlockString(s string, i int) int {
	delim := s[i : i+min(3, len(s)-i)]
	if len(delim) != 3 || delim[0] != delim[1] || delim[1] != delim[2] {
		return i
	}
	p := i + 3
	if p >= len(s) || s[p] != '\n' {
		return i
	}
	for k := p + 1; k < len(s); k++ {
		if s[k] != '\n' {
			continue
		}
		if end := closesBlock(s, k+1, delim); end > 0 {
			return end
		}
	}
	if end := closesBlock(s, p+1, delim); end > 0 {
		return end
	}
	return i
}

// closesBlock reports the end of "[\t ]*delim" at s[j], or 0.
func closesBlock(s string, j int, delim string) int {
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if strings.HasPrefix(s[j:], delim) {
		return j + len(delim)
	}
	return 0
}
