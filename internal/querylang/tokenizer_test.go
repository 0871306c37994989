package querylang

import (
	"testing"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
)

func newTestRegistry() *qualifier.Registry {
	return qualifier.NewRegistry()
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestTokenizeKeywordsAndWhitespaceAnd(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("sour pear", reg)

	want := []TokenType{TKeyword, TAnd, TKeyword}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %#v, want types %#v", "sour pear", tokens, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %v, want %v", "sour pear", i, got[i], want[i])
		}
	}
	if tokens[0].Operand != "sour" || tokens[2].Operand != "pear" {
		t.Fatalf("unexpected operands: %#v", tokens)
	}
}

func TestTokenizeDropsRedundantAnd(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("sour pear -apple", reg)

	for _, tok := range tokens {
		if tok.Type == TAnd {
			t.Fatalf("expected the AND between \"pear\" and \"-apple\" to be dropped, got %#v", tokens)
		}
	}
}

func TestTokenizeOrPipeAndKeyword(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("foo|bar", reg)

	want := []TokenType{TKeyword, TOr, TKeyword}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %#v, want types %#v", "foo|bar", tokens, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %v, want %v", "foo|bar", i, got[i], want[i])
		}
	}
}

func TestTokenizeQualifierPrefersLongestScope(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("blockcodelang:python", reg)

	if len(tokens) != 2 || tokens[0].Type != TQualifier {
		t.Fatalf("expected a QUALIFIER token first, got %#v", tokens)
	}
	if tokens[0].Scope != "blockcodelang" {
		t.Fatalf("expected scope \"blockcodelang\", got %q", tokens[0].Scope)
	}
	if tokens[0].Operator != ":" {
		t.Fatalf("expected operator \":\", got %q", tokens[0].Operator)
	}
	if tokens[1].Operand != "python" {
		t.Fatalf("expected operand \"python\", got %q", tokens[1].Operand)
	}
}

func TestTokenizeRegexpLiteralHonorsEscapedSlash(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize(`/ab\/cd/`, reg)

	if len(tokens) != 1 || tokens[0].Type != TRegexp {
		t.Fatalf("expected a single REGEXP token, got %#v", tokens)
	}
	if tokens[0].Operand != `ab\/cd` {
		t.Fatalf("expected operand %q, got %q", `ab\/cd`, tokens[0].Operand)
	}
}

func TestTokenizeUnterminatedRegexpFallsBackToKeyword(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("/unterminated", reg)

	if len(tokens) != 1 || tokens[0].Type != TKeyword {
		t.Fatalf("expected a single KEYWORD token, got %#v", tokens)
	}
}

func TestTokenizeParensAndNot(t *testing.T) {
	reg := newTestRegistry()
	tokens := Tokenize("path:(info | warn) -ext:md", reg)

	want := []TokenType{
		TQualifier, TParenOpen, TKeyword, TOr, TKeyword, TParenClose,
		TNot, TQualifier, TKeyword,
	}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(...) = %#v, want types %#v", tokens, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(...)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
