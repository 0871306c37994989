package querylang

import "fmt"

// Validate checks first/last/adjacency/paren-balance constraints over the
// token stream (distilled spec §4.C), returning a StructuralError or
// EmptyQueryError on violation.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return &EmptyQueryError{}
	}

	if first := tokens[0].Type; first == TOr || first == TAnd || first == TParenClose {
		return &StructuralError{Msg: fmt.Sprintf("Invalid first token:「%s」", first)}
	}

	switch last := tokens[len(tokens)-1].Type; last {
	case TOr, TAnd, TNot, TParenOpen, TQualifier:
		return &StructuralError{Msg: fmt.Sprintf("Invalid last token:「%s」", last)}
	}

	depth := 0
	for i, t := range tokens {
		switch t.Type {
		case TParenOpen:
			depth++
		case TParenClose:
			depth--
			if depth < 0 {
				return &StructuralError{Msg: fmt.Sprintf("Unmatched「%s」", TParenClose)}
			}
		}

		if i+1 >= len(tokens) {
			continue
		}
		if forbidden, ok := followForbidden[t.Type]; ok {
			next := tokens[i+1].Type
			if forbidden[next] {
				return &StructuralError{Msg: fmt.Sprintf("Unexpected「%s」after「%s」", next, t.Type)}
			}
		}
	}

	if depth != 0 {
		return &StructuralError{Msg: fmt.Sprintf("Unmatched「%s」", TParenOpen)}
	}

	return nil
}

// followForbidden is the FOLLOW table of §4.C: for a token of the given
// type, the next token must not be one of the associated set.
var followForbidden = map[TokenType]map[TokenType]bool{
	TOr:        tokenSet(TOr, TAnd, TParenClose),
	TAnd:       tokenSet(TOr, TAnd, TParenClose),
	TNot:       tokenSet(TOr, TAnd, TNot, TParenClose),
	TParenOpen: tokenSet(TOr, TAnd, TParenClose),
	TQualifier: tokenSet(TOr, TAnd, TNot, TParenClose, TQualifier),
}

func tokenSet(types ...TokenType) map[TokenType]bool {
	m := make(map[TokenType]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}
