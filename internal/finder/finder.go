// Package finder implements the façade distilled spec §6 describes:
// newFinder/getGrammar/parse/find/findByAst, wiring the query compiler
// (internal/querylang), the qualifier registry (internal/qualifier) and the
// directory walker (internal/walk) into one streaming search operation.
package finder

import (
	"context"
	"strings"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
	"github.com/kestrel-notes/mdfind/internal/querylang"
	"github.com/kestrel-notes/mdfind/internal/walk"
)

// Finder owns a registry (defaults plus any caller-supplied entries) and is
// immutable between calls once constructed (distilled spec §3 "Lifecycle").
type Finder struct {
	registry *qualifier.Registry
	walkOpts walk.Options
}

// Result is one item produced by Find/FindByAST: either a matching
// FileRecord or a terminal error.
type Result struct {
	Record *qualifier.FileRecord
	Err    error
}

// New builds a Finder with the default scope set plus any extraQualifiers,
// which override a default of the same scope name.
func New(extraQualifiers ...qualifier.Entry) *Finder {
	reg := qualifier.NewRegistry()
	if len(extraQualifiers) > 0 {
		reg.Register(extraQualifiers...)
	}
	return &Finder{registry: reg, walkOpts: walk.DefaultOptions()}
}

// WithWalkOptions returns a copy of f configured to walk directories with
// opts instead of the default filter chain.
func (f *Finder) WithWalkOptions(opts walk.Options) *Finder {
	clone := *f
	clone.walkOpts = opts
	return &clone
}

// Parse tokenizes, validates and parses query, then walks the resulting
// AST once validating and casting every leaf's operand (distilled spec §4.D
// "After parse, the caller must traverse the AST once..."). When
// caseSensitive is false, query is lowercased before tokenizing.
func (f *Finder) Parse(query string, caseSensitive bool) (*querylang.Node, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &querylang.InputError{Msg: "query is must"}
	}
	if !caseSensitive {
		query = strings.ToLower(query)
	}

	tokens := querylang.Tokenize(query, f.registry)
	if err := querylang.Validate(tokens); err != nil {
		return nil, err
	}
	root, err := querylang.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if err := f.applyQualifiers(root); err != nil {
		return nil, err
	}
	return root, nil
}

// applyQualifiers runs the post-parse leaf pass: validate(scope, operator,
// operand, operandKind) then castResult = cast(operand, operandKind).
func (f *Finder) applyQualifiers(root *querylang.Node) error {
	var firstErr error
	querylang.Traverse(root, func(n *querylang.Node) {
		if firstErr != nil {
			return
		}
		q, ok := f.registry.Get(n.Scope)
		if !ok {
			firstErr = &querylang.QualifierError{Scope: n.Scope, Err: unknownScopeError(n.Scope)}
			return
		}
		if err := q.Validate(n.Operator, n.Operand, n.OperandKind()); err != nil {
			firstErr = &querylang.QualifierError{Scope: n.Scope, Err: err}
			return
		}
		cast, err := q.Cast(n.Operand, n.OperandKind())
		if err != nil {
			firstErr = &querylang.QualifierError{Scope: n.Scope, Err: err}
			return
		}
		n.CastResult = cast
	})
	return firstErr
}

// Find composes Parse with FindByAST.
func (f *Finder) Find(ctx context.Context, query, dir string, caseSensitive bool) (<-chan Result, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &querylang.InputError{Msg: "dir is must"}
	}
	root, err := f.Parse(query, caseSensitive)
	if err != nil {
		return nil, err
	}
	return f.FindByAST(ctx, root, dir, caseSensitive), nil
}

// FindByAST walks dir and streams every file record whose evaluation of
// root returns true. The returned channel is closed once the walk
// completes, ctx is cancelled, or an error has been sent (distilled spec §7
// "The stream terminates on the first I/O error").
func (f *Finder) FindByAST(ctx context.Context, root *querylang.Node, dir string, caseSensitive bool) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		for wr := range walk.Walk(ctx, dir, f.walkOpts) {
			if wr.Err != nil {
				send(ctx, out, Result{Err: wr.Err})
				return
			}

			matched, err := f.evaluate(root, wr.Record, caseSensitive)
			if err != nil {
				send(ctx, out, Result{Err: err})
				return
			}
			if matched && !send(ctx, out, Result{Record: wr.Record}) {
				return
			}
		}
	}()

	return out
}

func send(ctx context.Context, out chan<- Result, r Result) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

type unknownScope string

func (e unknownScope) Error() string { return "unknown qualifier scope: " + string(e) }

func unknownScopeError(scope string) error { return unknownScope(scope) }
