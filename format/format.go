package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	NEONFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// formats is indexed by Format; the first suffix is the canonical one.
var formats = []struct {
	name, short string
	suffixes    []string
}{
	NEONFormat: {"neon", "n", []string{".neon"}},
	YAMLFormat: {"yaml", "y", []string{".yaml", ".yml"}},
	JSONFormat: {"json", "j", []string{".json"}},
}

// ParseFormat accepts a format name or its one letter abbreviation.
func ParseFormat(v string) (Format, error) {
	for f, d := range formats {
		if v == d.name || v == d.short {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return formats[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formats[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsNEON() bool { return f == NEONFormat }

// Suffix returns the file extension for this format, dot included.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return formats[f].suffixes[0]
}

// FromSuffix returns the format of a file named name, NEON when the suffix
// is not known.
func FromSuffix(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	for f, d := range formats {
		for _, s := range d.suffixes {
			if ext == s {
				return Format(f)
			}
		}
	}
	return NEONFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range formats {
		res[i] = Format(i)
	}
	return res
}
