package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/neon-format/go-neon/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Keep Op = iota
	Add
	Remove
)

func (o Op) String() string {
	switch o {
	case Keep:
		return "KEEP"
	case Add:
		return "ADD"
	case Remove:
		return "REMOVE"
	default:
		return "?"
	}
}

// Step is one entry of an edit script. Old is set for Keep and Remove,
// New for Keep and Add.
type Step[T any] struct {
	Op  Op
	Old T
	New T
}

// Align computes an edit script turning old into new. equal is always
// called with an element preceding the other one in old followed by new,
// and must behave as an equivalence between the elements it relates.
func Align[T any](old, new []T, equal func(a, b T) bool) []Step[T] {
	c := &classifier[T]{equal: equal}
	fromRunes := c.runes(old)
	toRunes := c.runes(new)
	diffCfg := diffpatch.New()
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := make([]Step[T], 0, max(len(old), len(new)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Step[T]{Op: Remove, Old: old[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Step[T]{Op: Keep, Old: old[fi], New: new[ti]})
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Step[T]{Op: Add, New: new[ti]})
				ti++
			}
		}
	}
	if debug.Align() {
		debug.Logf("align %d old %d new\n", len(old), len(new))
		for i := range res {
			debug.Logf("\t%s\n", res[i].Op)
		}
	}
	return res
}

// classifier assigns each element the rune of the first element it is
// equal to.
type classifier[T any] struct {
	equal func(a, b T) bool
	reps  []T
}

func (c *classifier[T]) runes(xs []T) []rune {
	rs := make([]rune, len(xs))
	for i := range xs {
		rs[i] = c.classOf(xs[i])
	}
	return rs
}

func (c *classifier[T]) classOf(x T) rune {
	for i := range c.reps {
		if c.equal(c.reps[i], x) {
			return classRune(i)
		}
	}
	c.reps = append(c.reps, x)
	return classRune(len(c.reps) - 1)
}

// classRune maps a class index to a valid rune, skipping surrogates which
// would not survive the diff's conversion to string.
func classRune(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
