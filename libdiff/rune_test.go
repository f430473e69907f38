package libdiff

import (
	"testing"
	"unicode/utf8"
)

func TestClassRune(t *testing.T) {
	for _, i := range []int{0, 1, 0xD7FF, 0xD800, 0xDFFF, 0xE000, 0x10000} {
		if r := classRune(i); !utf8.ValidRune(r) {
			t.Errorf("class %d: invalid rune %U", i, r)
		}
	}
	if classRune(0xD7FF) == classRune(0xD800) {
		t.Error("classes collide")
	}
}
