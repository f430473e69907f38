package encode

type EncodeOption func(*EncState)

// EncodeBlock selects block form for arrays, nested ones included.
// Entity attributes stay inline.
func EncodeBlock(v bool) EncodeOption {
	return func(es *EncState) { es.block = v }
}

// EncodeIndent sets the indentation of nested blocks, a tab by default.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// BlockFromOpts reports whether opts select block form.
func BlockFromOpts(opts ...EncodeOption) bool {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.block
}
