package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/neon-format/go-neon/format"
	"github.com/signadot/neon-format/go-neon/update"

	"github.com/scott-cotton/cli"
)

// readInput reads file, or the command input for "-".
func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

// readDocument reads and parses the NEON document file for editing.
func readDocument(cc *cli.Context, file string) (*update.Updater, []byte, error) {
	if f := format.FromSuffix(file); !f.IsNEON() {
		return nil, nil, fmt.Errorf("%w: cannot edit %s, only %s documents keep their layout", cli.ErrUsage, file, format.NEONFormat)
	}
	in, err := readInput(cc, file)
	if err != nil {
		return nil, nil, err
	}
	u, err := update.New(string(in))
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return u, in, nil
}

// writeResult writes out to file when write is set and to the command
// output otherwise.
func writeResult(cc *cli.Context, file, out string, write bool) error {
	if !write || file == "-" {
		_, err := io.WriteString(cc.Out, out)
		return err
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(out), fi.Mode().Perm()); err != nil {
		return fmt.Errorf("could not write %q: %w", file, err)
	}
	theLog.Info("updated", "file", file)
	return nil
}
