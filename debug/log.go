package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/value"
)

type JSON any
type NEON struct{ ir.Node }

func (y NEON) String() string {
	s, err := y.Node.Text()
	if err != nil {
		return fmt.Sprintf("[raw %T] %v", y.Node, y.Node)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, *value.Map, *value.Entity, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Node:
			args[i] = NEON{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
