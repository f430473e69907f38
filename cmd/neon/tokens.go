package main

import (
	"fmt"
	"io"

	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		ts, err := token.Tokenize(string(d))
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", file, err)
		}
		if err := printTokens(cfg.MainConfig, cc.Out, ts.Tokens()); err != nil {
			return err
		}
	}
	return nil
}

func printTokens(cfg *MainConfig, w io.Writer, toks []token.Token) error {
	var colors *encode.Colors
	if cfg.Color || useColor(w) {
		colors = encode.NewColors()
	}
	for i := range toks {
		t := &toks[i]
		info := t.Info()
		if c, ok := encode.Classify(toks, i); ok && colors != nil {
			info = colors.Color(c.Type, c.Attr, info)
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, info); err != nil {
			return err
		}
	}
	return nil
}
