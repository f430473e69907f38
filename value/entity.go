package value

import "encoding/json"

// Chain is the Value of an [Entity] representing a chain of entities such
// as `Foo(1)Bar(2)`. Its Attributes hold the chained entities in order.
const Chain = "!!chain"

// Entity is the value of `name(attributes)`.
type Entity struct {
	Value      any
	Attributes *Map
}

func NewEntity(v any, attrs *Map) *Entity {
	if attrs == nil {
		attrs = NewMap()
	}
	return &Entity{Value: v, Attributes: attrs}
}

func (e *Entity) IsChain() bool {
	s, ok := e.Value.(string)
	return ok && s == Chain
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	attrs := any(e.Attributes)
	if e.Attributes.IsList() {
		attrs = e.Attributes.Values()
		if attrs == nil {
			attrs = []any{}
		}
	}
	return json.Marshal(map[string]any{
		"value":      e.Value,
		"attributes": attrs,
	})
}
