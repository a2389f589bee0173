package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/bramblelang/bramble/interp/status"
	"github.com/bramblelang/bramble/lang/scanner"
	"github.com/bramblelang/bramble/lang/token"
)

// Tokenize runs the scanner phase only and prints the resulting tokens, one
// per line, in "line:token lexeme" form.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFile(ctx, stdio, args[0])
}

// TokenizeFile scans the file at path and writes its tokens to stdio.Stdout,
// one per line, or an error to stdio.Stderr on a scan failure.
func TokenizeFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		ferr := status.IOf("cannot read %q: %s", path, err)
		fmt.Fprintln(stdio.Stderr, ferr)
		return ferr
	}

	s := scanner.New(src)
	toks, serr := s.ScanAll()
	for _, tv := range toks {
		fmt.Fprintf(stdio.Stdout, "%d:%s", tv.Value.Line, tv.Token)
		if tv.Value.Lexeme != "" && tv.Token != token.EOF {
			fmt.Fprintf(stdio.Stdout, " %s", tv.Value.Lexeme)
		}
		fmt.Fprintln(stdio.Stdout)
	}
	if serr != nil {
		fmt.Fprintln(stdio.Stderr, serr)
		return serr
	}
	return nil
}
