package main

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/expr-lang/expr"

	"github.com/signadot/neon-format/go-neon/format"
	"github.com/signadot/neon-format/go-neon/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires an expression and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	in, err := readInput(cc, file)
	if err != nil {
		return err
	}
	doc, err := format.Decode(in, cfg.inFormat(file))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := evalExpr(args[0], doc)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	buf := &bytes.Buffer{}
	if err := format.Encode(res, cfg.outFormat(), buf, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	_, err = cc.Out.Write(buf.Bytes())
	return err
}

// evalExpr evaluates src with the document bound to doc and, when it is a
// map, its top level keys bound to their values.
func evalExpr(src string, doc any) (any, error) {
	plain := toPlain(doc)
	env := map[string]any{}
	if m, ok := plain.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = plain
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	return fromPlain(res), nil
}

// toPlain converts maps and entities to Go maps expressions can index.
func toPlain(v any) any {
	switch x := v.(type) {
	case *value.Map:
		res := make(map[string]any, x.Len())
		x.Range(func(k, v any) bool {
			res[value.KeyString(k)] = toPlain(v)
			return true
		})
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = toPlain(x[i])
		}
		return res
	case *value.Entity:
		return map[string]any{
			"value":      toPlain(x.Value),
			"attributes": toPlain(x.Attributes),
		}
	}
	return v
}

// fromPlain converts expression results back to values.
func fromPlain(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := value.NewMap()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			m.Set(k, fromPlain(x[k]))
		}
		return m
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = fromPlain(x[i])
		}
		return res
	case int:
		return int64(x)
	case float32:
		return float64(x)
	}
	return v
}
