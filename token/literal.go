package token

import "strings"

func in(c byte, set string) bool {
	return strings.IndexByte(set, c) >= 0
}

const (
	// bytes that cannot start a bare literal
	literalStartStop = "#\"',:=[]{}()\n\t `-"
	// bytes that cannot follow a leading ':' or '-'
	literalSignStop = "\"',=[]{}()\n\t "
	// bytes that end a run inside a literal
	literalRunStop = ",:=]})(\n\t "
	// bytes after a ':' that end the literal
	literalColonStop = "\n\t ,]})"
	// bytes after inner blanks that end the literal
	literalBlankStop = "#,:=]})(\n\t "
)

// scanLiteral returns the end offset of the bare literal starting at s[i],
// or i if none starts there.
func scanLiteral(s string, i int) int {
	n := len(s)
	if i >= n {
		return i
	}
	j := i
	c := s[i]
	switch {
	case !in(c, literalStartStop):
		j = i + 1
	case c == ':' || c == '-':
		if i > 0 && (s[i-1] == '"' || s[i-1] == '\'') {
			return i
		}
		if i+1 >= n || in(s[i+1], literalSignStop) {
			return i
		}
		j = i + 2
	default:
		return i
	}
	for j < n {
		c = s[j]
		switch {
		case !in(c, literalRunStop):
			j++
		case c == ':':
			if j+1 >= n || in(s[j+1], literalColonStop) {
				return j
			}
			j++
		case c == ' ' || c == '\t':
			k := j
			for k < n && (s[k] == ' ' || s[k] == '\t') {
				k++
			}
			if k >= n || in(s[k], literalBlankStop) {
				return j
			}
			j = k + 1
		default:
			return j
		}
	}
	return j
}

var keywords = []string{"true", "false", "yes", "no", "on", "off", "null"}

// RequiresDelimiters reports whether s would be read back as something
// other than the same string if it were written as a bare literal.
func RequiresDelimiters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	if looksNumeric(s) {
		return true
	}
	for _, kw := range keywords {
		if strings.EqualFold(s, kw) {
			return true
		}
	}
	return s == "" || scanLiteral(s, 0) != len(s)
}

// looksNumeric reports whether s starts with a digit, optionally after one
// byte in the range '+'..'.'.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] >= '+' && s[0] <= '.' {
		i = 1
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}
