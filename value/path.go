package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("bad path")

// ParsePath splits a dotted path such as "database.hosts.0".
func ParsePath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}

func mapKey(m *Map, part string) any {
	if m.Has(part) {
		return part
	}
	if i, err := strconv.ParseInt(part, 10, 64); err == nil && m.Has(i) {
		return i
	}
	return part
}

// Get returns the value at path inside v.
func Get(v any, path []string) (any, error) {
	cur := v
	for i, part := range path {
		switch x := cur.(type) {
		case *Map:
			next, ok := x.Get(mapKey(x, part))
			if !ok {
				return nil, fmt.Errorf("%w: no key %q at %s", ErrPath, part, strings.Join(path[:i], "."))
			}
			cur = next
		case []any:
			j, err := strconv.Atoi(part)
			if err != nil || j < 0 || j >= len(x) {
				return nil, fmt.Errorf("%w: bad index %q at %s", ErrPath, part, strings.Join(path[:i], "."))
			}
			cur = x[j]
		case *Entity:
			next, err := Get(x.Attributes, path[i:])
			if err != nil {
				return nil, err
			}
			return next, nil
		default:
			return nil, fmt.Errorf("%w: cannot index %T with %q", ErrPath, cur, part)
		}
	}
	return cur, nil
}

// Set stores x at path inside v and returns the resulting root. Missing
// intermediate maps are created; lists can only be indexed, not grown.
func Set(v any, path []string, x any) (any, error) {
	if len(path) == 0 {
		return x, nil
	}
	part := path[0]
	switch c := v.(type) {
	case nil:
		m := NewMap()
		sub, err := Set(nil, path[1:], x)
		if err != nil {
			return nil, err
		}
		m.Set(part, sub)
		return m, nil
	case *Map:
		k := mapKey(c, part)
		cur, _ := c.Get(k)
		sub, err := Set(cur, path[1:], x)
		if err != nil {
			return nil, err
		}
		c.Set(k, sub)
		return c, nil
	case []any:
		j, err := strconv.Atoi(part)
		if err != nil || j < 0 || j >= len(c) {
			return nil, fmt.Errorf("%w: bad index %q", ErrPath, part)
		}
		sub, err := Set(c[j], path[1:], x)
		if err != nil {
			return nil, err
		}
		c[j] = sub
		return c, nil
	case *Entity:
		attrs, err := Set(c.Attributes, path, x)
		if err != nil {
			return nil, err
		}
		c.Attributes = attrs.(*Map)
		return c, nil
	}
	return nil, fmt.Errorf("%w: cannot set %q in %T", ErrPath, part, v)
}

// KeepOrder returns v with the keys of every map reordered to follow the
// corresponding map in ref. Keys missing from ref keep their relative order
// after the known ones. Parts of v which encode to the same JSON as their
// counterpart in ref are replaced by it, so that values JSON cannot express
// (times, entities, floats with integral values) survive a round trip
// through JSON.
func KeepOrder(v, ref any) any {
	if sameJSON(v, ref) {
		return ref
	}
	switch x := v.(type) {
	case *Map:
		r, ok := ref.(*Map)
		if !ok {
			return x
		}
		res := NewMap()
		used := map[any]bool{}
		r.Range(func(k, rv any) bool {
			// JSON turns integer keys into strings.
			for _, xk := range []any{k, KeyString(k)} {
				if xv, ok := x.Get(xk); ok && !used[NormKey(xk)] {
					used[NormKey(xk)] = true
					res.Set(k, KeepOrder(xv, rv))
					break
				}
			}
			return true
		})
		x.Range(func(k, xv any) bool {
			if !used[k] {
				res.Set(k, xv)
			}
			return true
		})
		return res
	case []any:
		r, ok := ref.([]any)
		if !ok {
			return x
		}
		res := make([]any, len(x))
		for i := range x {
			if i < len(r) {
				res[i] = KeepOrder(x[i], r[i])
				continue
			}
			res[i] = x[i]
		}
		return res
	case *Entity:
		r, ok := ref.(*Entity)
		if !ok {
			return x
		}
		attrs, _ := KeepOrder(x.Attributes, r.Attributes).(*Map)
		return &Entity{Value: KeepOrder(x.Value, r.Value), Attributes: attrs}
	}
	return v
}

func sameJSON(a, b any) bool {
	da, err := json.Marshal(a)
	if err != nil {
		return false
	}
	db, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}
