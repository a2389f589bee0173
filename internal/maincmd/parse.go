package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/bramblelang/bramble/interp/status"
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/parser"
)

// Parse runs the scanner and parser phases and prints the resulting syntax
// tree, one node per indented line.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFile(ctx, stdio, args[0])
}

// ParseFile parses the file at path and prints its syntax tree to
// stdio.Stdout, or the accumulated parse errors to stdio.Stderr.
func ParseFile(_ context.Context, stdio mainer.Stdio, path string) error {
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

	printer := ast.Printer{Output: stdio.Stdout}
	return printer.Print(res.Program)
}
