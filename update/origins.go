package update

import (
	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/libdiff"
	"github.com/signadot/neon-format/go-neon/value"
)

// GuessOrigins links the nodes of new to the nodes of old holding the same
// value, so that patching leaves them untouched. Items of block arrays are
// paired by key, or by value when neither has a key, which keeps the
// pairing when entries move.
//
// Keyless items holding equal values are indistinguishable, so an edit of
// one of several equal entries may be attributed to another.
func GuessOrigins(old, new ir.Node) {
	oa, ok := old.(*ir.Array)
	na, nok := new.(*ir.Array)
	if ok && nok && oa.Block {
		na.Origin = oa
		for _, s := range libdiff.Align(oa.Items, na.Items, sameKey) {
			if s.Op != libdiff.Keep {
				continue
			}
			s.New.Origin = s.Old
			GuessOrigins(s.Old.Value, s.New.Value)
		}
		return
	}
	if value.Equal(old.ToValue(), new.ToValue()) {
		new.Pos().Origin = old
	}
}

func sameKey(a, b *ir.Item) bool {
	switch {
	case a.Key == nil && b.Key == nil:
		return value.Equal(a.Value.ToValue(), b.Value.ToValue())
	case a.Key == nil || b.Key == nil:
		return false
	}
	return value.Equal(value.NormKey(a.Key.ToValue()), value.NormKey(b.Key.ToValue()))
}
