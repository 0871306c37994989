package qualifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is what a caller (the registry's defaults, or a user calling
// register(entries)) supplies for one scope; missing fields are filled in
// by Build when the entry becomes a live Qualifier (§4.A "Default
// fallbacks applied when an entry omits fields").
type Entry struct {
	Scope        string
	Name         string
	IsMeta       bool
	Validate     func(operator, operand string, kind OperandKind) error
	Cast         func(operand string, kind OperandKind) (Value, error)
	Query        func(rec *FileRecord) (Value, error)
	MatchKeyword MatchFunc
	MatchPhrase  MatchFunc
	MatchRegexp  MatchFunc
}

// Build fills in default fallbacks and returns a live Qualifier.
func (e Entry) Build() *Qualifier {
	q := &Qualifier{
		Scope:        e.Scope,
		Name:         e.Name,
		IsMeta:       e.IsMeta,
		Validate:     e.Validate,
		Cast:         e.Cast,
		Query:        e.Query,
		MatchKeyword: e.MatchKeyword,
		MatchPhrase:  e.MatchPhrase,
		MatchRegexp:  e.MatchRegexp,
	}

	if q.Validate == nil {
		q.Validate = ValidateStringOrRegex
	}
	if q.Cast == nil {
		q.Cast = CastStringOrRegex
	}
	if q.MatchKeyword == nil {
		q.MatchKeyword = PrimitiveCompareKeyword
	}
	if q.MatchPhrase == nil {
		q.MatchPhrase = q.MatchKeyword
	}
	if q.MatchRegexp == nil {
		q.MatchRegexp = PrimitiveMatchRegexp
	}
	return q
}

// ValidateStringOrRegex is the default validator for string/regex scopes:
// only ":", "=", "!=" are accepted, and a regex operand requires ":".
func ValidateStringOrRegex(operator, _ string, kind OperandKind) error {
	switch operator {
	case ":", "=", "!=":
	default:
		return fmt.Errorf("unsupported operator %q for string scope", operator)
	}
	if kind == RegexpKind && operator != ":" {
		return fmt.Errorf("regex operand requires the \":\" operator, got %q", operator)
	}
	return nil
}

// CastStringOrRegex is the default cast for string/regex scopes.
func CastStringOrRegex(operand string, kind OperandKind) (Value, error) {
	if kind == RegexpKind {
		re, err := compileOperandRegexp(operand)
		if err != nil {
			return Value{}, err
		}
		return Re(re), nil
	}
	return Str(operand), nil
}

func compileOperandRegexp(operand string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(operand)
	if err != nil {
		return nil, fmt.Errorf("invalid regexp %q: %w", operand, err)
	}
	return re, nil
}

// ValidateComparable is the validator shared by size/time/linenum/charnum/
// chinesenum: ":" and regex operands are rejected, and parse validates the
// operand using the scope's own grammar.
func ValidateComparable(parse func(string) error) func(operator, operand string, kind OperandKind) error {
	return func(operator, operand string, kind OperandKind) error {
		if kind == RegexpKind {
			return fmt.Errorf("regex operand not supported for comparable scope")
		}
		switch operator {
		case "=", "!=", ">=", "<=", ">", "<":
		default:
			return fmt.Errorf("unsupported operator %q for comparable scope", operator)
		}
		return parse(operand)
	}
}

// ValidateBoolean is the validator for crlf/hasimage/haschinese: only "="
// and "!=" are accepted, and the operand must be "true" or "false".
func ValidateBoolean(operator, operand string, _ OperandKind) error {
	switch operator {
	case "=", "!=":
	default:
		return fmt.Errorf("unsupported operator %q for boolean scope", operator)
	}
	switch strings.ToLower(strings.TrimSpace(operand)) {
	case "true", "false":
		return nil
	default:
		return fmt.Errorf("operand must be true or false, got %q", operand)
	}
}

// CastBoolean parses "true"/"false" operands.
func CastBoolean(operand string, _ OperandKind) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(operand)) {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	default:
		return Value{}, fmt.Errorf("operand must be true or false, got %q", operand)
	}
}

// CastNumber parses a bare decimal number operand (linenum/charnum/
// chinesenum).
func CastNumber(operand string, _ OperandKind) (Value, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(operand), 64)
	if err != nil {
		return Value{}, fmt.Errorf("operand must be a number, got %q", operand)
	}
	return Num(n), nil
}
