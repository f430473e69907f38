// Package update rewrites NEON documents in place.
//
// An [Updater] holds the tokens and the tree of a parsed document. Given a
// new value or a new tree it computes the smallest set of token rewrites
// turning the document into one which decodes to the new value, leaving
// comments, blank lines, quoting and indentation of unchanged parts intact.
//
// # Usage
//
//	u, err := update.New(src)
//	if err != nil {
//		return err
//	}
//	out, err := u.Reconcile(newValue)
//
// Trees built by hand are patched with [Updater.Patch]. Their nodes are
// matched to the nodes of the document through [ir.Position.Origin], which
// [Updater.CloneWithOrigins] and [GuessOrigins] set.
//
// # Related Packages
//
//   - github.com/signadot/neon-format/go-neon/parse - the parser
//   - github.com/signadot/neon-format/go-neon/encode - value to tree conversion
//   - github.com/signadot/neon-format/go-neon/libdiff - item alignment
package update
