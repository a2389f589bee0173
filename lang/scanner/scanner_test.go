package scanner_test

import (
	"testing"

	"github.com/bramblelang/bramble/lang/scanner"
	"github.com/bramblelang/bramble/lang/token"
)

func TestScanPunctuationAndOperators(t *testing.T) {
	s := scanner.New([]byte("(){},.-+;*/! != = == < <= > >="))
	var got []token.Token
	for {
		tv := s.Scan()
		got = append(got, tv.Token)
		if tv.Token == token.EOF {
			break
		}
	}

	want := []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA, token.DOT,
		token.MINUS, token.PLUS, token.SEMI, token.STAR, token.SLASH,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, tok := range want {
		if got[i] != tok {
			t.Errorf("token[%d] = %s, want %s", i, got[i], tok)
		}
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	s := scanner.New([]byte("var foo = fun class this super nil true false print return if else for while and or"))
	var kinds []token.Token
	for {
		tv := s.Scan()
		if tv.Token == token.EOF {
			break
		}
		kinds = append(kinds, tv.Token)
	}
	want := []token.Token{
		token.VAR, token.IDENT, token.EQ, token.FUN, token.CLASS, token.THIS, token.SUPER,
		token.NIL, token.TRUE, token.FALSE, token.PRINT, token.RETURN, token.IF, token.ELSE,
		token.FOR, token.WHILE, token.AND, token.OR,
	}
	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(kinds), len(want), kinds)
	}
	for i, tok := range want {
		if kinds[i] != tok {
			t.Errorf("token[%d] = %s, want %s", i, kinds[i], tok)
		}
	}
}

func TestScanNumberAndString(t *testing.T) {
	s := scanner.New([]byte(`3.14 42 "hello world"`))

	tv := s.Scan()
	if tv.Token != token.NUMBER || tv.Value.Number != 3.14 {
		t.Fatalf("got %v %v, want NUMBER 3.14", tv.Token, tv.Value.Number)
	}
	tv = s.Scan()
	if tv.Token != token.NUMBER || tv.Value.Number != 42 {
		t.Fatalf("got %v %v, want NUMBER 42", tv.Token, tv.Value.Number)
	}
	tv = s.Scan()
	if tv.Token != token.STRING || tv.Value.Str != "hello world" {
		t.Fatalf("got %v %q, want STRING %q", tv.Token, tv.Value.Str, "hello world")
	}
}

func TestScanLineCounting(t *testing.T) {
	s := scanner.New([]byte("var a = 1;\nvar b = 2;\nprint a + b;"))
	var lastLine int
	for {
		tv := s.Scan()
		if tv.Token == token.EOF {
			lastLine = tv.Value.Line
			break
		}
	}
	if lastLine != 3 {
		t.Fatalf("EOF line = %d, want 3", lastLine)
	}
}

func TestScanCommentsAreSkipped(t *testing.T) {
	s := scanner.New([]byte("// a comment\nvar x = 1; // trailing\n"))
	tv := s.Scan()
	if tv.Token != token.VAR {
		t.Fatalf("first token = %s, want var", tv.Token)
	}
}

func TestScanUnterminatedStringIsReported(t *testing.T) {
	s := scanner.New([]byte(`"oops`))
	tv := s.Scan()
	if tv.Token != token.ILLEGAL {
		t.Fatalf("token = %s, want ILLEGAL", tv.Token)
	}
	if len(s.Errors()) != 1 {
		t.Fatalf("errors = %d, want 1", len(s.Errors()))
	}
}
