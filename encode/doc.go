// Package encode encodes Go values as NEON text.
//
// # Usage
//
//	m := value.MapOf("name", "alice", "tags", []any{"a", "b"})
//	s, err := encode.String(m)
//	// {name: alice, tags: [a, b]}
//
//	s, err = encode.String(m, encode.EncodeBlock(true))
//	// name: alice
//	// tags:
//	// 	- a
//	// 	- b
//
// [Node] gives the tree instead of the text, which is what the update
// package reconciles against a parsed document.
//
// # Related Packages
//
//   - github.com/signadot/neon-format/go-neon/value - value model
//   - github.com/signadot/neon-format/go-neon/ir - syntax tree
//   - github.com/signadot/neon-format/go-neon/parse - Parse text to trees
package encode
