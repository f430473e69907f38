// Package token provides tokenization support for NEON documents.
//
// [Tokenize] splits a document into tokens which together reproduce the
// (line ending normalized) input byte for byte. Comments, whitespace and
// newlines are kept as tokens so that positions can be used to rewrite
// parts of the original text.
//
// [Stream] is the cursor the parser consumes; it skips formatting tokens on
// lookahead and reports errors with line and column.
package token
