// Package parse parses NEON text into ir nodes.
//
// # Usage
//
//	node, ts, err := parse.Parse([]byte("database:\n\thost: localhost\n"))
//	if err != nil {
//	    return err
//	}
//	v := node.ToValue()
//
// Every node carries the range of indices into ts.Tokens() it was parsed
// from. Block arrays remember their indentation relative to the block they
// are nested in.
//
// Errors are *token.SyntaxErr values carrying line and column.
//
// # Related Packages
//
//   - github.com/signadot/neon-format/go-neon/ir - syntax tree
//   - github.com/signadot/neon-format/go-neon/token - tokenization
//   - github.com/signadot/neon-format/go-neon/encode - values to trees
package parse
