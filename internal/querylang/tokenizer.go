package querylang

import (
	"regexp"
	"strings"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
)

var (
	andPattern     = regexp.MustCompile(`(?i)^(?:\s|\bAND\b)+`)
	orPattern      = regexp.MustCompile(`(?i)^(?:\||\bOR\b)`)
	phrasePattern  = regexp.MustCompile(`^"[^"]*"`)
	keywordPattern = regexp.MustCompile(`^[^\s"()|]+`)
)

// Tokenize turns query into a flat token stream, trying branches in the
// priority order AND, NOT, PHRASE, PAREN_OPEN, PAREN_CLOSE, OR, QUALIFIER,
// REGEXP, KEYWORD at every position (distilled spec §4.B). Matching is
// case-insensitive; bytes that match nothing are silently dropped, per the
// grammar's stated tokenizer error policy (it never raises). The QUALIFIER
// branch uses reg.Tokenizer(), the registry's own cached regex, rather than
// building one here, so a given registry's scope alternation is compiled
// once and reused across every query parsed against it.
func Tokenize(query string, reg *qualifier.Registry) []Token {
	qualifierPattern := reg.Tokenizer()

	var tokens []Token
	rest := query
	for len(rest) > 0 {
		switch {
		case andPattern.MatchString(rest):
			m := andPattern.FindString(rest)
			tokens = append(tokens, Token{Type: TAnd})
			rest = rest[len(m):]

		case rest[0] == '-':
			tokens = append(tokens, Token{Type: TNot})
			rest = rest[1:]

		case phrasePattern.MatchString(rest):
			m := phrasePattern.FindString(rest)
			tokens = append(tokens, Token{Type: TPhrase, Operand: strings.Trim(m, `"`)})
			rest = rest[len(m):]

		case rest[0] == '(':
			tokens = append(tokens, Token{Type: TParenOpen})
			rest = rest[1:]

		case rest[0] == ')':
			tokens = append(tokens, Token{Type: TParenClose})
			rest = rest[1:]

		case orPattern.MatchString(rest):
			m := orPattern.FindString(rest)
			tokens = append(tokens, Token{Type: TOr})
			rest = rest[len(m):]

		case qualifierPattern != nil && qualifierPattern.MatchString(rest):
			m := qualifierPattern.FindStringSubmatch(rest)
			tokens = append(tokens, Token{
				Type:     TQualifier,
				Scope:    strings.ToLower(m[1]),
				Operator: m[2],
			})
			rest = rest[len(m[0]):]

		case rest[0] == '/':
			if lit, n, ok := scanRegexpLiteral(rest); ok {
				tokens = append(tokens, Token{Type: TRegexp, Operand: lit})
				rest = rest[n:]
				continue
			}
			fallthrough

		default:
			if m := keywordPattern.FindString(rest); m != "" {
				tokens = append(tokens, Token{Type: TKeyword, Operand: m})
				rest = rest[len(m):]
				continue
			}
			rest = rest[1:]
		}
	}

	return dropRedundantAnd(tokens)
}

func isRedundantAndPrev(t TokenType) bool {
	switch t {
	case TOr, TAnd, TNot, TParenOpen, TQualifier:
		return true
	default:
		return false
	}
}

func isRedundantAndNext(t TokenType) bool {
	switch t {
	case TOr, TAnd, TNot, TParenClose:
		return true
	default:
		return false
	}
}

// dropRedundantAnd removes AND tokens whose neighbors make them
// grammatically meaningless — at the start/end of the stream, or adjacent to
// another operator/qualifier/paren (distilled spec §4.B), so whitespace near
// operators is invisible to the validator and parser.
func dropRedundantAnd(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i, t := range tokens {
		if t.Type == TAnd {
			noPrev := len(out) == 0
			noNext := i+1 >= len(tokens)
			if noPrev || noNext {
				continue
			}
			if isRedundantAndPrev(out[len(out)-1].Type) || isRedundantAndNext(tokens[i+1].Type) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
