package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/parse"
	"github.com/signadot/neon-format/go-neon/value"
)

// Decode decodes d written in format f.
func Decode(d []byte, f Format) (any, error) {
	switch f {
	case NEONFormat:
		n, _, err := parse.Parse(d)
		if err != nil {
			return nil, err
		}
		return n.ToValue(), nil
	case JSONFormat:
		return value.FromJSON(d)
	case YAMLFormat:
		var v any
		if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
			return nil, err
		}
		return fromYAML(v)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Encode writes v to w in format f. opts apply to NEON output.
func Encode(v any, f Format, w io.Writer, opts ...encode.EncodeOption) error {
	switch f {
	case NEONFormat:
		return encode.Encode(v, w, opts...)
	case JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case YAMLFormat:
		d, err := yaml.Marshal(toYAML(v))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}

func fromYAML(v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := value.NewMap()
		for _, it := range x {
			k, err := fromYAML(it.Key)
			if err != nil {
				return nil, err
			}
			switch k.(type) {
			case string, int64, float64, bool:
			default:
				return nil, fmt.Errorf("unsupported yaml key %v", it.Key)
			}
			val, err := fromYAML(it.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, val)
		}
		return m, nil
	case []any:
		res := make([]any, len(x))
		for i := range x {
			e, err := fromYAML(x[i])
			if err != nil {
				return nil, err
			}
			res[i] = e
		}
		return res, nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return float64(x), nil
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case nil, bool, float64, string, time.Time:
		return x, nil
	}
	return nil, fmt.Errorf("unsupported yaml value %T", v)
}

func toYAML(v any) any {
	switch x := v.(type) {
	case *value.Map:
		if x.Len() != 0 && x.IsList() {
			return toYAML(x.Values())
		}
		res := yaml.MapSlice{}
		x.Range(func(k, v any) bool {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(v)})
			return true
		})
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = toYAML(x[i])
		}
		return res
	case *value.Entity:
		return yaml.MapSlice{
			{Key: "value", Value: toYAML(x.Value)},
			{Key: "attributes", Value: toYAML(x.Attributes)},
		}
	}
	return v
}
