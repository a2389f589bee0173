// Package parser implements the recursive-descent, Pratt-flavored parser
// described by the language grammar: a fixed precedence ladder from
// assignment down to primary expressions, with statement-boundary error
// recovery so a single syntax mistake does not abort the whole parse.
package parser

import (
	"fmt"

	"github.com/bramblelang/bramble/lang/ast"
	"github.com/bramblelang/bramble/lang/scanner"
	"github.com/bramblelang/bramble/lang/token"
)

// Error is a single parse-time failure.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("[line %d] parse error: %s", e.Line, e.Msg) }

// ErrorList collects every Error produced while parsing, so recoverable
// mistakes can all be reported together instead of stopping at the first
// one.
type ErrorList []*Error

func (el ErrorList) Error() string {
	s := ""
	for i, e := range el {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}

func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Result is the outcome of Parse: the statements it managed to recover,
// plus any errors found along the way. The caller must not evaluate a
// Result with a non-empty Errors slice (spec: "the caller aborts evaluation
// if errors is non-empty").
type Result struct {
	Program *ast.Program
	Errors  ErrorList
}

// Parse scans and parses src (named filename for error messages) into a
// Result.
func Parse(filename string, src []byte) *Result {
	p := &parser{filename: filename, s: scanner.New(src)}
	p.advance()

	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	p.errors = append(p.errors, scanErrorsToParse(p.s.Errors())...)
	return &Result{Program: &ast.Program{Stmts: stmts}, Errors: p.errors}
}

func scanErrorsToParse(el scanner.ErrorList) ErrorList {
	out := make(ErrorList, 0, len(el))
	for _, e := range el {
		out = append(out, &Error{Line: e.Line, Msg: e.Msg})
	}
	return out
}

// parser holds the mutable state of a single parse.
type parser struct {
	filename string
	s        *scanner.Scanner
	errors   ErrorList

	prev scanner.TokenAndValue
	cur  scanner.TokenAndValue
}

func (p *parser) advance() {
	p.prev = p.cur
	p.cur = p.s.Scan()
}

func (p *parser) check(tok token.Token) bool { return p.cur.Token == tok }

func (p *parser) match(tok token.Token) bool {
	if !p.check(tok) {
		return false
	}
	p.advance()
	return true
}

// expect consumes the current token if it matches tok, else records a parse
// error and returns the zero TokenAndValue.
func (p *parser) expect(tok token.Token, context string) scanner.TokenAndValue {
	if p.check(tok) {
		cur := p.cur
		p.advance()
		return cur
	}
	p.errorf("expected %s %s, got %s", tok, context, p.cur.Token)
	return scanner.TokenAndValue{}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, &Error{Line: p.cur.Value.Line, Msg: fmt.Sprintf(format, args...)})
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so a single malformed statement does not cascade into spurious errors for
// everything that follows it.
func (p *parser) synchronize() {
	for !p.check(token.EOF) {
		if p.prev.Token == token.SEMI {
			return
		}
		switch p.cur.Token {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
