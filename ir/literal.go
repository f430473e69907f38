package ir

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Literal is a bare scalar: null, a boolean, a number, a date-time or an
// unquoted string.
type Literal struct {
	Position
	Value any
}

func NewLiteral(v any) *Literal {
	return &Literal{Position: noPos(), Value: v}
}

var keywordValues = map[string]any{
	"true": true, "True": true, "TRUE": true,
	"yes": true, "Yes": true, "YES": true,
	"on": true, "On": true, "ON": true,
	"false": false, "False": false, "FALSE": false,
	"no": false, "No": false, "NO": false,
	"off": false, "Off": false, "OFF": false,
	"null": nil, "Null": nil, "NULL": nil,
}

var (
	numberRe = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	hexRe    = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	octalRe  = regexp.MustCompile(`^0o[0-7]+$`)
	binaryRe = regexp.MustCompile(`^0b[01]+$`)
	// date, then optional time, fraction and zone
	dateTimeRe = regexp.MustCompile(`^(\d\d\d\d)-(\d\d?)-(\d\d?)(?:(?:[Tt]| +)(\d\d?):(\d\d):(\d\d)(?:\.(\d*))? *(Z|[-+]\d\d?(?::?\d\d)?)?)?$`)
)

// ParseLiteral converts the text of a bare literal to its value. Keys are
// never read as keywords or dates.
func ParseLiteral(text string, isKey bool) any {
	if !isKey {
		if v, ok := keywordValues[text]; ok {
			return v
		}
	}
	if numberRe.MatchString(text) {
		return parseNumber(text)
	}
	switch {
	case hexRe.MatchString(text):
		return parseRadix(text, 16)
	case octalRe.MatchString(text):
		return parseRadix(text, 8)
	case binaryRe.MatchString(text):
		return parseRadix(text, 2)
	}
	if !isKey {
		if t, ok := parseDateTime(text); ok {
			return t
		}
	}
	return text
}

func parseNumber(text string) any {
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
	}
	f, _ := strconv.ParseFloat(text, 64)
	if math.IsInf(f, 0) {
		return text
	}
	return f
}

// parseRadix overflows into a float like integer literals do. Numerals
// too large for a float stay strings, as decimal ones do.
func parseRadix(text string, base int) any {
	digits := text[2:]
	if i, err := strconv.ParseInt(digits, base, 64); err == nil {
		return i
	}
	f := 0.0
	for i := 0; i < len(digits); i++ {
		d, _ := strconv.ParseInt(digits[i:i+1], base, 64)
		f = f*float64(base) + float64(d)
	}
	if math.IsInf(f, 0) {
		return text
	}
	return f
}

func parseDateTime(text string) (time.Time, bool) {
	m := dateTimeRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	num := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	nsec := 0
	if frac := m[7]; frac != "" {
		frac = (frac + "000000000")[:9]
		nsec = num(frac)
	}
	loc := time.UTC
	if z := m[8]; z != "" && z != "Z" {
		sign := 1
		if z[0] == '-' {
			sign = -1
		}
		z = strings.ReplaceAll(z[1:], ":", "")
		var h, mm int
		switch len(z) {
		case 1, 2:
			h = num(z)
		case 3:
			h, mm = num(z[:1]), num(z[1:])
		default:
			h, mm = num(z[:2]), num(z[2:])
		}
		loc = time.FixedZone("", sign*(h*3600+mm*60))
	}
	t := time.Date(num(m[1]), time.Month(num(m[2])), num(m[3]),
		num(m[4]), num(m[5]), num(m[6]), nsec, loc)
	return t, true
}

// DateTimeFormat is the layout date-times render with. Fractional seconds
// are written only when present.
const DateTimeFormat = "2006-01-02 15:04:05.999999999 -0700"

func (n *Literal) ToValue() any { return n.Value }

func (n *Literal) Children() []Node { return nil }

func (n *Literal) Text() (string, error) {
	switch x := n.Value.(type) {
	case time.Time:
		return x.Format(DateTimeFormat), nil
	case string:
		return x, nil
	case float64:
		return FormatFloat(x)
	case int64:
		return strconv.FormatInt(x, 10), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "null", nil
	}
	return "", fmt.Errorf("%w: literal of type %T", ErrInternal, n.Value)
}

// FormatFloat renders f in its shortest form which reads back as the same
// float, always including a decimal point.
func FormatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: unsupported float %v", ErrInternal, f)
	}
	fmtc := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	s := strconv.FormatFloat(f, fmtc, -1, 64)
	if strings.Contains(s, ".") {
		return s, nil
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:], nil
	}
	return s + ".0", nil
}
