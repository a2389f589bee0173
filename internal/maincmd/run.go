package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/bramblelang/bramble/interp"
	"github.com/bramblelang/bramble/interp/status"
	"github.com/bramblelang/bramble/lang/parser"
	"github.com/bramblelang/bramble/lang/resolver"
)

// Run scans, parses, resolves, and evaluates the script at args[0]. Any
// arguments after the script path are made available to the script via
// get_args().
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(ctx, stdio, args[0], args[1:])
}

// RunFile evaluates the script at path, writing whatever it prints to
// stdio.Stdout and scriptArgs to get_args(). It returns the first scan,
// parse, resolve, or runtime failure, already printed to stdio.Stderr.
func RunFile(_ context.Context, stdio mainer.Stdio, path string, scriptArgs []string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		ferr := status.IOf("cannot read %q: %s", path, err)
		fmt.Fprintln(stdio.Stderr, ferr)
		return ferr
	}

	res := parser.Parse(path, src)
	if len(res.Errors) > 0 {
		fmt.Fprintln(stdio.Stderr, res.Errors)
		return res.Errors
	}

	depths, rerr := resolver.Resolve(res.Program)
	if rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return rerr
	}

	st := interp.New(stdio.Stdout, depths, scriptArgs)
	if err := st.Run(res.Program); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
