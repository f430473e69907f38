// Package libdiff aligns two sequences into an edit script.
//
// # Usage
//
//	steps := libdiff.Align(oldItems, newItems, func(a, b *ir.Item) bool {
//		return sameKey(a, b)
//	})
//	for _, s := range steps {
//		switch s.Op {
//		case libdiff.Keep:
//		case libdiff.Add:
//		case libdiff.Remove:
//		}
//	}
//
// Every old element appears exactly once as Keep or Remove and every new
// element exactly once as Keep or Add, each sequence in its own order.
//
// # Related Packages
//
//   - github.com/signadot/neon-format/go-neon/update - the round trip updater
package libdiff
