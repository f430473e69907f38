package main

import (
	"fmt"
	"strings"

	"github.com/signadot/neon-format/go-neon"
	"github.com/signadot/neon-format/go-neon/value"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires at least one path=value and a file", cli.ErrUsage)
	}
	file := args[len(args)-1]
	u, _, err := readDocument(cc, file)
	if err != nil {
		return err
	}
	doc := u.Node().ToValue()
	for _, a := range args[:len(args)-1] {
		doc, err = setArg(doc, a)
		if err != nil {
			return err
		}
	}
	out, err := u.Reconcile(doc)
	if err != nil {
		return fmt.Errorf("error updating %s: %w", file, err)
	}
	return writeResult(cc, file, out, cfg.Write)
}

// setArg applies one path=value argument to doc. The value is read as
// NEON.
func setArg(doc any, a string) (any, error) {
	path, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: %q is not path=value", cli.ErrUsage, a)
	}
	v, err := neon.Decode(val)
	if err != nil {
		return nil, fmt.Errorf("error decoding value of %s: %w", path, err)
	}
	return value.Set(doc, value.ParsePath(path), v)
}
