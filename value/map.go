package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Map is an insertion ordered mapping with string or int64 keys.
//
// Keyless appends receive the next integer key, one more than the largest
// integer key seen so far.
type Map struct {
	keys  []any
	vals  []any
	index map[any]int
	next  int64
}

func NewMap() *Map {
	return &Map{index: map[any]int{}}
}

// MapOf builds a Map from alternating keys and values.
func MapOf(kvs ...any) *Map {
	if len(kvs)%2 != 0 {
		panic("value.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kvs); i += 2 {
		m.Set(kvs[i], kvs[i+1])
	}
	return m
}

// NormKey converts k to the key type used by Map: integers become int64,
// floats are truncated, strings are kept. Other types are rendered as
// strings.
func NormKey(k any) any {
	switch x := k.(type) {
	case string:
		return x
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float64:
		return int64(math.Trunc(x))
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case nil:
		return ""
	}
	return fmt.Sprint(k)
}

func (m *Map) init() {
	if m.index == nil {
		m.index = map[any]int{}
	}
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores v under k. An existing key keeps its position.
func (m *Map) Set(k, v any) {
	m.init()
	k = NormKey(k)
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	if ik, ok := k.(int64); ok && ik >= m.next {
		m.next = ik + 1
	}
}

// Append stores v under the next integer key.
func (m *Map) Append(v any) {
	m.Set(m.next, v)
}

func (m *Map) Get(k any) (any, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[NormKey(k)]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

func (m *Map) Has(k any) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *Map) Delete(k any) {
	if m == nil || m.index == nil {
		return
	}
	k = NormKey(k)
	i, ok := m.index[k]
	if !ok {
		return
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	delete(m.index, k)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}

func (m *Map) Keys() []any {
	if m == nil {
		return nil
	}
	return append([]any(nil), m.keys...)
}

func (m *Map) Values() []any {
	if m == nil {
		return nil
	}
	return append([]any(nil), m.vals...)
}

// Range calls f for each entry in order until f returns false.
func (m *Map) Range(f func(k, v any) bool) {
	if m == nil {
		return
	}
	for i := range m.keys {
		if !f(m.keys[i], m.vals[i]) {
			return
		}
	}
}

// IsList reports whether the keys are exactly 0, 1, ..., n-1 in order.
func (m *Map) IsList() bool {
	if m == nil {
		return true
	}
	for i, k := range m.keys {
		if ik, ok := k.(int64); !ok || ik != int64(i) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	res := NewMap()
	m.Range(func(k, v any) bool {
		res.Set(k, v)
		return true
	})
	return res
}

// KeyString renders a key the way it appears in JSON objects.
func KeyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprint(k)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(KeyString(k))
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
