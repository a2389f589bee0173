package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/bramblelang/bramble/interp/status"
	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/parser"
	"github.com/bramblelang/bramble/lang/resolver"
)

// Resolve runs the scanner, parser, and resolver phases and prints the
// syntax tree with each variable reference annotated by its resolved scope
// depth (or "@global" when the resolver found no enclosing binding).
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFile(ctx, stdio, args[0])
}

// ResolveFile parses and resolves the file at path and prints the
// depth-annotated syntax tree to stdio.Stdout, or the first error phase
// encountered to stdio.Stderr.
func ResolveFile(_ context.Context, stdio mainer.Stdio, path string) error {
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

	printer := ast.Printer{Output: stdio.Stdout, Depths: depths}
	return printer.Print(res.Program)
}
