package finder

import (
	"strings"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
	"github.com/kestrel-notes/mdfind/internal/querylang"
)

// evaluate runs the streaming evaluator's leaf function (distilled spec
// §4.F) over root for one file record: query the scope, lowercase when
// caseSensitive is false, then dispatch to the scope's match function for
// the leaf's operand kind.
func (f *Finder) evaluate(root *querylang.Node, rec *qualifier.FileRecord, caseSensitive bool) (bool, error) {
	var evalErr error

	matched := querylang.Evaluate(root, func(n *querylang.Node) bool {
		if evalErr != nil {
			return false
		}

		q, ok := f.registry.Get(n.Scope)
		if !ok {
			evalErr = unknownScopeError(n.Scope)
			return false
		}

		queryValue, err := q.Query(rec)
		if err != nil {
			evalErr = err
			return false
		}
		if !caseSensitive {
			queryValue = lowercaseValue(queryValue)
		}

		return q.Match(n.OperandKind(), n.Operator, n.CastResult, queryValue)
	})

	if evalErr != nil {
		return false, evalErr
	}
	return matched, nil
}

func lowercaseValue(v qualifier.Value) qualifier.Value {
	switch v.Kind {
	case qualifier.KindString:
		v.Str = strings.ToLower(v.Str)
	case qualifier.KindStringSlice:
		lowered := make([]string, len(v.StrList))
		for i, s := range v.StrList {
			lowered[i] = strings.ToLower(s)
		}
		v.StrList = lowered
	}
	return v
}
