package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quoted is a string written between quotes.
type Quoted struct {
	Position
	Value string
}

func NewQuoted(s string) *Quoted {
	return &Quoted{Position: noPos(), Value: s}
}

func (n *Quoted) ToValue() any { return n.Value }

func (n *Quoted) Children() []Node { return nil }

var (
	blockIndentRe = regexp.MustCompile(`^...\n+([\t ]*)`)
	blockTrimRe   = regexp.MustCompile(`^\n|\n[\t ]*$`)
	escapeRe      = regexp.MustCompile(`(?i)\\(?:ud[89ab][0-9a-f]{2}\\ud[c-f][0-9a-f]{2}|u[0-9a-f]{4}|u\{[0-9a-f]{1,6}\}|x[0-9a-f]{2}|.)`)
	closingRe     = regexp.MustCompile(`(?:^|\n)[\t ]*'''`)
)

var escapes = map[byte]string{
	't':  "\t",
	'n':  "\n",
	'r':  "\r",
	'f':  "\f",
	'b':  "\b",
	'"':  "\"",
	'/':  "/",
	'\\': "\\",
	'_':  "\u00a0",
}

// ParseQuoted decodes the raw text of a STRING token.
func ParseQuoted(raw string) (string, error) {
	if len(raw) < 2 {
		return "", fmt.Errorf("bad quoted string %q", raw)
	}
	var res string
	if m := blockIndentRe.FindStringSubmatch(raw); m != nil && len(raw) >= 6 && raw[0] == raw[1] && raw[1] == raw[2] {
		res = raw[3 : len(raw)-3]
		res = strings.ReplaceAll(res, "\n"+m[1], "\n")
		res = blockTrimRe.ReplaceAllString(res, "")
	} else {
		res = raw[1 : len(raw)-1]
		if raw[0] == '\'' {
			res = strings.ReplaceAll(res, "''", "'")
		}
	}
	if raw[0] == '\'' {
		return res, nil
	}
	var err error
	res = escapeRe.ReplaceAllStringFunc(res, func(sq string) string {
		if err != nil {
			return sq
		}
		s, e := unescape(sq)
		if e != nil {
			err = e
		}
		return s
	})
	return res, err
}

func unescape(sq string) (string, error) {
	if s, ok := escapes[sq[1]]; ok && len(sq) == 2 {
		return s, nil
	}
	switch {
	case sq[1] == 'u' && len(sq) == 12:
		hi, _ := strconv.ParseUint(sq[2:6], 16, 16)
		lo, _ := strconv.ParseUint(sq[8:12], 16, 16)
		return string(utf16.DecodeRune(rune(hi), rune(lo))), nil
	case sq[1] == 'u' && len(sq) == 6:
		cp, _ := strconv.ParseUint(sq[2:], 16, 32)
		return string(rune(cp)), nil
	case sq[1] == 'u' && len(sq) > 2 && sq[2] == '{':
		cp, _ := strconv.ParseUint(sq[3:len(sq)-1], 16, 32)
		if cp > utf8.MaxRune {
			return "", fmt.Errorf("Code point higher than U+10FFFF in %s", sq)
		}
		return string(rune(cp)), nil
	case sq[1] == 'x' && len(sq) == 4:
		b, _ := strconv.ParseUint(sq[2:], 16, 8)
		return string([]byte{byte(b)}), nil
	}
	return "", fmt.Errorf("Invalid escaping sequence %s", sq)
}

func (n *Quoted) Text() (string, error) {
	s := n.Value
	// carriage returns do not survive tokenizing unescaped
	cr := strings.Contains(s, "\r")
	if !strings.Contains(s, "\n") {
		if cr {
			return jsonString(s)
		}
		return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
	}
	delim := "'''"
	if cr || closingRe.MatchString(s) || firstLineIndented(s) {
		var err error
		s, err = blockEscape(s)
		if err != nil {
			return "", err
		}
		delim = `"""`
	}
	return delim + "\n" + IndentLines(s, "\t") + "\n" + delim, nil
}

// blockEscape escapes s for a """ block: JSON escapes except for newlines,
// tabs and double quotes, with runs of three quotes broken up.
func blockEscape(s string) (string, error) {
	js, err := jsonString(s)
	if err != nil {
		return "", err
	}
	js = js[1 : len(js)-1]
	var sb strings.Builder
	for i := 0; i < len(js); i++ {
		if js[i] != '\\' || i+1 == len(js) {
			sb.WriteByte(js[i])
			continue
		}
		i++
		switch js[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(js[i])
		}
	}
	res := strings.ReplaceAll(sb.String(), `"""`, `""\"`)
	// the first line's indentation would be read as the block's
	i := len(res) - len(strings.TrimLeft(res, "\n"))
	if i < len(res) {
		switch res[i] {
		case ' ':
			res = res[:i] + `\u0020` + res[i+1:]
		case '\t':
			res = res[:i] + `\t` + res[i+1:]
		}
	}
	return res, nil
}

func jsonString(s string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func firstLineIndented(s string) bool {
	s = strings.TrimLeft(s, "\n")
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

// IndentLines prefixes every non-empty line of s with indent.
func IndentLines(s, indent string) string {
	if indent == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
