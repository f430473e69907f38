package encode

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/token"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
	NullColor
	BoolColor
	NumberColor
	DateColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: CommentColor,
		}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Type: ir.LiteralType, Attr: NumberColor}
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = NullColor
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = BoolColor
	colors.Map[able] = color.CyanString
	able.Attr = DateColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Type = ir.QuotedType
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Type = ir.ItemType
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = ir.EntityType
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Classify returns how the token at index i of toks is coloured. ok is
// false for whitespace and newlines.
func Classify(toks []token.Token, i int) (c Colorable, ok bool) {
	t := &toks[i]
	switch t.Kind {
	case token.TWhitespace, token.TNewline:
		return c, false
	case token.TComment:
		return Colorable{Type: ir.LiteralType, Attr: CommentColor}, true
	case token.TColon, token.TEquals:
		return Colorable{Type: ir.ItemType, Attr: SepColor}, true
	case token.TString:
		if isKey(toks, i) {
			return Colorable{Type: ir.QuotedType, Attr: FieldColor}, true
		}
		return Colorable{Type: ir.QuotedType, Attr: ValueColor}, true
	case token.TLiteral:
		switch {
		case isKey(toks, i):
			return Colorable{Type: ir.LiteralType, Attr: FieldColor}, true
		case i+1 < len(toks) && toks[i+1].Kind == token.TLParen:
			return Colorable{Type: ir.EntityType, Attr: ValueColor}, true
		}
		return Colorable{Type: ir.LiteralType, Attr: literalAttr(t.Value)}, true
	}
	return Colorable{Type: ir.ArrayType, Attr: SepColor}, true
}

func isKey(toks []token.Token, i int) bool {
	for j := i + 1; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.TWhitespace, token.TComment:
			continue
		case token.TColon, token.TEquals:
			return true
		}
		return false
	}
	return false
}

func literalAttr(text string) ColorAttr {
	switch ir.ParseLiteral(text, false).(type) {
	case nil:
		return NullColor
	case bool:
		return BoolColor
	case int64, float64:
		return NumberColor
	case time.Time:
		return DateColor
	}
	return ValueColor
}

func colorize(s string, es *EncState) (string, error) {
	ts, err := token.Tokenize(s)
	if err != nil {
		return "", err
	}
	return ColorTokens(ts.Tokens(), es.Color), nil
}

// ColorTokens renders toks with each token coloured by f.
func ColorTokens(toks []token.Token, f func(ir.Type, ColorAttr, string) string) string {
	buf := &strings.Builder{}
	for i := range toks {
		c, ok := Classify(toks, i)
		if !ok || f == nil {
			buf.WriteString(toks[i].Value)
			continue
		}
		buf.WriteString(f(c.Type, c.Attr, toks[i].Value))
	}
	return buf.String()
}
