package main

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/neon-format/go-neon/format"
	"github.com/signadot/neon-format/go-neon/update"
	"github.com/signadot/neon-format/go-neon/value"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a file to which to apply it", cli.ErrUsage)
	}
	pd, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	// the patch itself may be written in any format
	pv, err := format.Decode(pd, cfg.inFormat(args[0]))
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	pj, err := json.Marshal(pv)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pj)
	if err != nil {
		return fmt.Errorf("%w: bad json patch: %w", cli.ErrUsage, err)
	}
	file := args[1]
	u, _, err := readDocument(cc, file)
	if err != nil {
		return err
	}
	out, err := applyJSONPatch(u, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeResult(cc, file, out, cfg.Write)
}

func applyJSONPatch(u *update.Updater, ops jsonpatch.Patch) (string, error) {
	old := u.Node().ToValue()
	d, err := json.Marshal(old)
	if err != nil {
		return "", err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return "", err
	}
	v, err := value.FromJSON(jOut)
	if err != nil {
		return "", err
	}
	return u.Reconcile(value.KeepOrder(v, old))
}
