package qualifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Registry holds the live dispatch table: one Qualifier per scope name, plus
// the compiled QUALIFIER-branch regex derived from the registered scope and
// operator names. A Finder owns exactly one Registry; both the table and the
// tokenizer regex are immutable between calls to Register (distilled spec §3
// "A Finder instance owns a registry ... and a compiled tokenizer regex
// derived from the registry. Both are immutable between calls to the
// configuration mutator"). querylang.Tokenize calls Tokenizer() on every
// invocation, so the regex is built once per Register and reused for every
// query parsed against this registry.
type Registry struct {
	mu         sync.RWMutex
	qualifiers map[string]*Qualifier
	tokenizer  *regexp.Regexp
}

// NewRegistry builds a Registry preloaded with the base and Markdown scopes.
func NewRegistry() *Registry {
	r := &Registry{qualifiers: make(map[string]*Qualifier)}
	r.Register(BaseEntries()...)
	r.Register(MarkdownEntries()...)
	return r
}

// Register adds or replaces entries and rebuilds the compiled tokenizer
// regex. Registering a scope under an existing name overwrites it, which is
// how callers override a default (e.g. replacing "content" with a
// project-specific definition).
func (r *Registry) Register(entries ...Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		r.qualifiers[e.Scope] = e.Build()
	}
	r.tokenizer = nil // rebuilt lazily by Tokenizer()
}

// Get looks up a scope by name.
func (r *Registry) Get(scope string) (*Qualifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.qualifiers[scope]
	return q, ok
}

// Scopes returns every registered scope name, sorted for deterministic
// grammar/tokenizer output.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.qualifiers))
	for name := range r.qualifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operators lists the operator tokens the tokenizer must recognize, longest
// first so the alternation regex never short-matches ">" inside ">=".
func Operators() []string {
	return []string{">=", "<=", "!=", ":", "=", ">", "<"}
}

// scopePattern returns the alternation of every registered scope name,
// longest first, so "blockcodelang" is tried before "blockcode". The caller
// must hold r.mu.
func (r *Registry) scopePattern() string {
	names := make([]string, 0, len(r.qualifiers))
	for name := range r.qualifiers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}

// Tokenizer returns the compiled QUALIFIER-branch regex for the registry's
// current scope set, building and caching it on first use after a Register
// call. querylang.Tokenize uses this, not a regex it builds itself, so the
// match against "blockcodelang:" vs "blockcode:" and ">=" vs ">" is compiled
// exactly once per Register rather than once per Tokenize call.
func (r *Registry) Tokenizer() *regexp.Regexp {
	r.mu.RLock()
	if r.tokenizer != nil {
		defer r.mu.RUnlock()
		return r.tokenizer
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tokenizer != nil {
		return r.tokenizer
	}
	r.tokenizer = compileTokenizer(r.scopePattern())
	return r.tokenizer
}

// compileTokenizer builds the QUALIFIER branch's regex: a scope alternation
// followed by an operator alternation, both longest-first so
// "blockcodelang" is tried before "blockcode" and ">=" before ">". The other
// branches (AND/OR/NOT, PHRASE, PAREN, REGEXP, KEYWORD) stay as the small
// package-level patterns in querylang's tokenizer — only the QUALIFIER
// branch depends on registry state, so it's the only one that needs
// rebuilding when Register changes the scope set.
func compileTokenizer(scopePattern string) *regexp.Regexp {
	ops := append([]string(nil), Operators()...)
	sort.Slice(ops, func(i, j int) bool { return len(ops[i]) > len(ops[j]) })
	quotedOps := make([]string, len(ops))
	for i, o := range ops {
		quotedOps[i] = regexp.QuoteMeta(o)
	}
	pattern := fmt.Sprintf(`(?i)^(%s)(%s)`, scopePattern, strings.Join(quotedOps, "|"))
	return regexp.MustCompile(pattern)
}
