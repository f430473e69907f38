package value

import "time"

// Equal reports whether a and b are the same value: same dynamic type and
// recursively equal contents. Lists and maps compare in order. Times are
// equal when they denote the same instant with the same UTC offset. An
// empty Map equals an empty list: NEON has a single empty array.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case int64:
		y, ok := b.(int64)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case time.Time:
		y, ok := b.(time.Time)
		if !ok || !x.Equal(y) {
			return false
		}
		_, xo := x.Zone()
		_, yo := y.Zone()
		return xo == yo
	case []any:
		if m, ok := b.(*Map); ok {
			return len(x) == 0 && m.Len() == 0
		}
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Map:
		if l, ok := b.([]any); ok {
			return x.Len() == 0 && len(l) == 0
		}
		y, ok := b.(*Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x.Len() == 0 {
			return true
		}
		for i := range x.keys {
			if x.keys[i] != y.keys[i] || !Equal(x.vals[i], y.vals[i]) {
				return false
			}
		}
		return true
	case *Entity:
		y, ok := b.(*Entity)
		if !ok {
			return false
		}
		return Equal(x.Value, y.Value) && Equal(x.Attributes, y.Attributes)
	}
	return false
}
