package qualifier

import "strings"

// CompareString implements the ":" (substring), "=" (exact) and "!="
// operators for a string query value.
func CompareString(operator, cast, query string) bool {
	switch operator {
	case ":":
		return strings.Contains(query, cast)
	case "=":
		return query == cast
	case "!=":
		return query != cast
	default:
		return false
	}
}

// CompareNumber implements the comparable-scope operator set: =, !=, >, <,
// >=, <=.
func CompareNumber(operator string, cast, query float64) bool {
	switch operator {
	case "=":
		return query == cast
	case "!=":
		return query != cast
	case ">":
		return query > cast
	case "<":
		return query < cast
	case ">=":
		return query >= cast
	case "<=":
		return query <= cast
	default:
		return false
	}
}

// CompareBool implements the boolean-scope operator set: =, !=.
func CompareBool(operator string, cast, query bool) bool {
	switch operator {
	case "=":
		return query == cast
	case "!=":
		return query != cast
	default:
		return false
	}
}

// AnyString reports whether any element of values satisfies pred — the
// array-compare matcher §4.A requires for array-valued scopes (line, and
// every Markdown scope).
func AnyString(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}

// PrimitiveCompareKeyword is the default-fallback KEYWORD/PHRASE matcher
// (§4.A "KEYWORD = primitive-compare"): it dispatches on the query value's
// kind so one function can serve string, number, boolean, epoch-ms and
// string-array scopes alike.
func PrimitiveCompareKeyword(operator string, cast, query Value) bool {
	switch query.Kind {
	case KindString:
		return CompareString(operator, cast.Str, query.Str)
	case KindNumber:
		return CompareNumber(operator, cast.Num, query.Num)
	case KindBool:
		return CompareBool(operator, cast.Bool, query.Bool)
	case KindEpochMillis:
		return CompareNumber(operator, float64(cast.Millis), float64(query.Millis))
	case KindStringSlice:
		return AnyString(query.StrList, func(v string) bool {
			return CompareString(operator, cast.Str, v)
		})
	default:
		return false
	}
}

// PrimitiveMatchRegexp is the default-fallback REGEXP matcher (§4.A
// "REGEXP = string-regex").
func PrimitiveMatchRegexp(_ string, cast, query Value) bool {
	if cast.Re == nil {
		return false
	}
	switch query.Kind {
	case KindStringSlice:
		return AnyString(query.StrList, cast.Re.MatchString)
	default:
		return cast.Re.MatchString(query.Str)
	}
}
