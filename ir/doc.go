// Package ir provides the syntax tree of NEON documents.
//
// # Nodes
//
// A document parses to a tree of [Node] values:
//
//   - [Literal]: a bare scalar, `true`, `12`, `2020-01-02` or `foo`
//   - [Quoted]: a quoted string, `'foo'`, `"a\tb"` or a triple quoted block
//   - [Array]: items in block form or between `[]`, `{}` or `()`
//   - [Item]: a key and a value, or a value alone
//   - [Entity] and [EntityChain]: `Name(attributes)` and `A(1)B(2)`
//
// Each node knows the value it denotes ([Node.ToValue], see package value)
// and how to render itself ([Node.Text]).
//
// # Positions
//
// Parsed nodes carry the range of token indices they were read from in
// their [Position]. Nodes built by other means have StartPos [NoPos].
// Position.Origin links the nodes of a rebuilt tree back to the parsed
// nodes they correspond to, which is how the update package knows which
// text it may keep.
package ir
