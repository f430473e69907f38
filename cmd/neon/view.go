package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/neon-format/go-neon/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	in, err := readInput(cc, file)
	if err != nil {
		return err
	}
	if err := viewDocs(cfg, cc.Out, in, cfg.inFormat(file)); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewDocs(cfg *ViewConfig, w io.Writer, in []byte, inFmt format.Format) error {
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	mCfg := cfg.MainConfig
	opts := mCfg.encOpts(w)
	for i, doc := range docs {
		v, err := format.Decode(doc, inFmt)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		buf := &bytes.Buffer{}
		if err := format.Encode(v, mCfg.outFormat(), buf, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if i < n-1 {
			_, err = w.Write([]byte("\n---\n"))
			if err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
