// Package qualifier implements the dispatch table described by the query
// grammar: a registry mapping each qualifier scope to a quadruple of
// functions (validate, cast, query, match) that together define how that
// scope is validated, coerced, extracted from a file, and compared.
package qualifier

import "regexp"

// OperandKind tags the syntactic flavour of a match literal.
type OperandKind int

const (
	// Keyword is a bareword operand.
	Keyword OperandKind = iota
	// Phrase is a quoted operand.
	Phrase
	// RegexpKind is a /slash/-delimited operand.
	RegexpKind
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindRegexp
	KindNumber
	KindBool
	KindEpochMillis
	KindStringSlice
)

// Value is the tagged union CastValue/QueryValue share: a scope's cast
// produces one, its query produces one (usually of the same kind), and its
// match function compares them.
type Value struct {
	Kind    ValueKind
	Str     string
	Re      *regexp.Regexp
	Num     float64
	Bool    bool
	Millis  int64
	StrList []string
}

func Str(s string) Value                { return Value{Kind: KindString, Str: s} }
func Re(re *regexp.Regexp) Value        { return Value{Kind: KindRegexp, Re: re} }
func Num(n float64) Value               { return Value{Kind: KindNumber, Num: n} }
func Bool(b bool) Value                 { return Value{Kind: KindBool, Bool: b} }
func Millis(ms int64) Value             { return Value{Kind: KindEpochMillis, Millis: ms} }
func StrList(ss []string) Value         { return Value{Kind: KindStringSlice, StrList: ss} }

// FileRecord is the input to every scope's query function: a candidate file
// discovered by the directory walker.
type FileRecord struct {
	Path  string
	File  string
	Stats FileStats
	Data  []byte
}

// FileStats mirrors the subset of os.FileInfo the registry's base scopes
// need, kept separate from os.FileInfo so tests can construct fixtures
// without touching the filesystem.
type FileStats struct {
	Size  int64
	Mtime int64 // unix millis
}

// MatchFunc compares a leaf's cast value against a scope's query value for
// one operand kind (KEYWORD, PHRASE, or REGEXP).
type MatchFunc func(operator string, cast Value, query Value) bool

// Qualifier is the registry entry for one scope.
type Qualifier struct {
	Scope   string
	Name    string
	IsMeta  bool
	Validate func(operator string, operand string, kind OperandKind) error
	Cast     func(operand string, kind OperandKind) (Value, error)
	Query    func(rec *FileRecord) (Value, error)
	MatchKeyword MatchFunc
	MatchPhrase  MatchFunc
	MatchRegexp  MatchFunc
}

// Match dispatches to the match function for the given operand kind.
func (q *Qualifier) Match(kind OperandKind, operator string, cast, query Value) bool {
	switch kind {
	case RegexpKind:
		return q.MatchRegexp(operator, cast, query)
	case Phrase:
		return q.MatchPhrase(operator, cast, query)
	default:
		return q.MatchKeyword(operator, cast, query)
	}
}
