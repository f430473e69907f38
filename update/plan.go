package update

import (
	"strings"

	"github.com/signadot/neon-format/go-neon/token"
)

type slotOp int

const (
	slotKeep slotOp = iota
	slotReplace
)

// slot says what becomes of one token: it is kept or replaced by text, and
// in both cases preceded by insert.
type slot struct {
	op     slotOp
	text   string
	insert string
}

// plan holds one slot per token plus a final one for text inserted after
// the last token.
type plan struct {
	toks  []token.Token
	slots []slot
}

func newPlan(toks []token.Token) *plan {
	return &plan{toks: toks, slots: make([]slot, len(toks)+1)}
}

// replaceWith replaces the tokens start..end inclusive with s.
func (p *plan) replaceWith(s string, start, end int) {
	for i := start; i <= end; i++ {
		p.slots[i].op = slotReplace
	}
	p.slots[start].text += s
}

// insertBefore queues s in front of token i. Insertions at the same token
// are emitted in the order they were made.
func (p *plan) insertBefore(s string, i int) {
	p.slots[i].insert += s
}

func (p *plan) empty() bool {
	for i := range p.slots {
		if p.slots[i].op != slotKeep || p.slots[i].insert != "" {
			return false
		}
	}
	return true
}

func (p *plan) render() string {
	buf := &strings.Builder{}
	for i := range p.slots {
		s := &p.slots[i]
		buf.WriteString(s.insert)
		if i == len(p.toks) {
			break
		}
		if s.op == slotReplace {
			buf.WriteString(s.text)
			continue
		}
		buf.WriteString(p.toks[i].Value)
	}
	return buf.String()
}
