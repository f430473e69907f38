package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/neon-format/go-neon/format"
	"github.com/signadot/neon-format/go-neon/value"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	u, from, err := readDocument(cc, args[0])
	if err != nil {
		return err
	}
	to, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	v, err := format.Decode(to, cfg.inFormat(args[1]))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	out, err := u.Reconcile(value.KeepOrder(v, u.Node().ToValue()))
	if err != nil {
		return err
	}
	if out == string(from) {
		return nil
	}
	printLineDiff(cc.Out, string(from), out, cfg.Color || useColor(cc.Out))
	return cli.ExitCodeErr(1)
}

// printLineDiff writes a line based diff of a and b, prefixing removed
// lines with '-' and added ones with '+'.
func printLineDiff(w io.Writer, a, b string, colored bool) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintln(w, del("-"+line))
			case diffpatch.DiffInsert:
				fmt.Fprintln(w, ins("+"+line))
			case diffpatch.DiffEqual:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}
