// Package neon reads, writes and updates NEON documents.
//
// NEON is a human friendly configuration format close to YAML:
//
//	# database
//	database:
//		host: localhost
//		ports: [5432, 5433]
//
// [Decode] and [Encode] convert between documents and the values of package
// value. [Update] rewrites a document so that it decodes to a new value while
// keeping its comments and layout wherever the value did not change.
package neon

import (
	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/parse"
	"github.com/signadot/neon-format/go-neon/update"
)

// Decode returns the value of the NEON document s.
func Decode(s string) (any, error) {
	n, _, err := parse.ParseString(s)
	if err != nil {
		return nil, err
	}
	return n.ToValue(), nil
}

// Encode renders v as NEON, inline unless [encode.EncodeBlock] is given.
func Encode(v any, opts ...encode.EncodeOption) (string, error) {
	return encode.String(v, opts...)
}

// Update returns src rewritten to decode to v with as few changes as
// possible.
func Update(src string, v any) (string, error) {
	u, err := update.New(src)
	if err != nil {
		return "", err
	}
	return u.Reconcile(v)
}
