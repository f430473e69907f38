package encode

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/token"
	"github.com/signadot/neon-format/go-neon/value"
)

type EncState struct {
	block  bool
	indent string

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Node converts v to a tree whose ToValue is equal to v. v may hold the
// values of package value as well as Go maps, slices and numbers.
func Node(v any, opts ...EncodeOption) (ir.Node, error) {
	return newState(opts).node(v)
}

// Encode writes v as NEON to w. In block form the output ends with a
// newline unless v is a scalar or an empty array.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	n, err := es.node(v)
	if err != nil {
		return err
	}
	return EncodeNode(n, w, opts...)
}

// EncodeNode writes the text of n to w.
func EncodeNode(n ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	s, err := n.Text()
	if err != nil {
		return err
	}
	if es.Color != nil {
		s, err = colorize(s, es)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, s)
	return err
}

// String returns v encoded as NEON.
func String(v any, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (es *EncState) node(v any) (ir.Node, error) {
	switch x := v.(type) {
	case nil, bool, int64, string:
		if s, ok := x.(string); ok && token.RequiresDelimiters(s) {
			return ir.NewQuoted(s), nil
		}
		return ir.NewLiteral(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, x)
		}
		return ir.NewLiteral(x), nil
	case time.Time:
		return ir.NewLiteral(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.NewLiteral(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
		}
		return es.node(f)
	case *value.Entity:
		return es.entity(x)
	case value.Entity:
		return es.entity(&x)
	case []any:
		return es.array(len(x), func(i int) (any, any) { return int64(i), x[i] }, true)
	case *value.Map:
		keys, vals := x.Keys(), x.Values()
		return es.array(len(keys), func(i int) (any, any) { return keys[i], vals[i] }, x.IsList())
	}
	return es.reflectNode(v)
}

func (es *EncState) entity(e *value.Entity) (ir.Node, error) {
	if e.IsChain() {
		chain := ir.NewEntityChain()
		var err error
		e.Attributes.Range(func(_, v any) bool {
			var n ir.Node
			n, err = es.node(v)
			if err != nil {
				return false
			}
			ce, ok := n.(*ir.Entity)
			if !ok {
				err = fmt.Errorf("%w: entity chain element %T", ErrUnsupported, v)
				return false
			}
			chain.Chain = append(chain.Chain, ce)
			return true
		})
		if err != nil {
			return nil, err
		}
		return chain, nil
	}
	val, err := es.node(e.Value)
	if err != nil {
		return nil, err
	}
	inline := &EncState{indent: es.indent}
	keys, vals := e.Attributes.Keys(), e.Attributes.Values()
	items, err := inline.items(len(keys), func(i int) (any, any) { return keys[i], vals[i] }, e.Attributes.IsList())
	if err != nil {
		return nil, err
	}
	return ir.NewEntity(val, items...), nil
}

// array builds an array of n entries; at returns the key and value of each.
// hide drops the keys, which must then be 0..n-1.
func (es *EncState) array(n int, at func(int) (any, any), hide bool) (ir.Node, error) {
	items, err := es.items(n, at, hide)
	if err != nil {
		return nil, err
	}
	if es.block {
		return ir.NewBlock("", items...), nil
	}
	bracket := byte('{')
	if hide {
		bracket = '['
	}
	return ir.NewInline(bracket, items...), nil
}

func (es *EncState) items(n int, at func(int) (any, any), hide bool) ([]*ir.Item, error) {
	items := make([]*ir.Item, 0, n)
	for i := range n {
		k, v := at(i)
		var key ir.Node
		if !hide {
			var err error
			key, err = es.node(value.NormKey(k))
			if err != nil {
				return nil, err
			}
		}
		val, err := es.node(v)
		if err != nil {
			return nil, err
		}
		if a, ok := val.(*ir.Array); ok && a.Block {
			a.Indentation = es.indent
		}
		items = append(items, ir.NewItem(key, val))
	}
	return items, nil
}

func (es *EncState) reflectNode(v any) (ir.Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.NewLiteral(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return es.node(float64(u))
		}
		return ir.NewLiteral(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return es.node(rv.Float())
	case reflect.String:
		return es.node(rv.String())
	case reflect.Bool:
		return ir.NewLiteral(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return es.array(0, nil, true)
		}
		return es.array(rv.Len(), func(i int) (any, any) { return int64(i), rv.Index(i).Interface() }, true)
	case reflect.Map:
		keys := rv.MapKeys()
		for _, k := range keys {
			if _, ok := mapKey(k); !ok {
				return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, k.Type())
			}
		}
		slices.SortFunc(keys, compareKeys)
		m := value.NewMap()
		for _, k := range keys {
			mk, _ := mapKey(k)
			m.Set(mk, rv.MapIndex(k).Interface())
		}
		return es.node(m)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.NewLiteral(nil), nil
		}
		return es.node(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func mapKey(k reflect.Value) (any, bool) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return k.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(k.Uint()), true
	}
	return nil, false
}

// compareKeys orders integer keys numerically before string keys.
func compareKeys(a, b reflect.Value) int {
	ak, _ := mapKey(a)
	bk, _ := mapKey(b)
	as, aok := ak.(string)
	bs, bok := bk.(string)
	switch {
	case aok && bok:
		return cmp.Compare(as, bs)
	case aok:
		return 1
	case bok:
		return -1
	}
	return cmp.Compare(ak.(int64), bk.(int64))
}
