// Package value defines the Go values NEON documents decode to.
//
//   - null, booleans, integers, floats and strings: nil, bool, int64,
//     float64, string
//   - dates and date-times: time.Time
//   - arrays without keys: []any
//   - arrays with keys: *Map, an insertion ordered map
//   - entities such as `Column(type: int)`: *Entity
//
// [Equal] is the strict equality used to decide whether a part of a
// document changed.
package value
