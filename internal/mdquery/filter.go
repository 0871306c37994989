package mdquery

import (
	"github.com/yuin/goldmark/ast"
)

// Filter decides, node by node during a preorder walk, whether that node's
// content should be collected. Enter/Leave carry the stateful bookkeeping
// wrappedBy/wrappedByTag/wrappedByMulti need; Test is evaluated on entering
// nodes only.
type Filter interface {
	Enter(n ast.Node)
	Leave(n ast.Node)
	Test(n ast.Node) bool
}

// Kind returns the Markdown node's type name, e.g. "Heading", "Text".
func Kind(n ast.Node) string {
	return n.Kind().String()
}

// Tag returns a node's qualifier-level sub-type, used by wrappedByTag to
// distinguish e.g. ordered from unordered lists. Nodes without a meaningful
// tag return "".
func Tag(n ast.Node) string {
	switch v := n.(type) {
	case *ast.List:
		if v.IsOrdered() {
			return "ol"
		}
		return "ul"
	case *ast.Heading:
		return headingTag(v.Level)
	default:
		return ""
	}
}

func headingTag(level int) string {
	switch level {
	case 1:
		return "h1"
	case 2:
		return "h2"
	case 3:
		return "h3"
	case 4:
		return "h4"
	case 5:
		return "h5"
	case 6:
		return "h6"
	default:
		return ""
	}
}

type isFilter struct{ typ string }

// Is matches nodes whose Kind equals typ.
func Is(typ string) Filter { return &isFilter{typ: typ} }

func (f *isFilter) Enter(ast.Node) {}
func (f *isFilter) Leave(ast.Node) {}
func (f *isFilter) Test(n ast.Node) bool { return Kind(n) == f.typ }

type wrappedByFilter struct {
	typ     string
	counter int
}

// WrappedBy matches any node visited while inside an open instance of typ.
func WrappedBy(typ string) Filter { return &wrappedByFilter{typ: typ} }

func (f *wrappedByFilter) Enter(n ast.Node) {
	if Kind(n) == f.typ {
		f.counter++
	}
}
func (f *wrappedByFilter) Leave(n ast.Node) {
	if Kind(n) == f.typ {
		f.counter--
	}
}
func (f *wrappedByFilter) Test(ast.Node) bool { return f.counter > 0 }

type wrappedByTagFilter struct {
	typ, tag string
	counter  int
}

// WrappedByTag is WrappedBy restricted to instances of typ whose own Tag
// equals tag (e.g. WrappedByTag("List", "ul") only counts unordered lists).
func WrappedByTag(typ, tag string) Filter {
	return &wrappedByTagFilter{typ: typ, tag: tag}
}

func (f *wrappedByTagFilter) Enter(n ast.Node) {
	if Kind(n) == f.typ && Tag(n) == f.tag {
		f.counter++
	}
}
func (f *wrappedByTagFilter) Leave(n ast.Node) {
	if Kind(n) == f.typ && Tag(n) == f.tag {
		f.counter--
	}
}
func (f *wrappedByTagFilter) Test(ast.Node) bool { return f.counter > 0 }

type wrappedByMultiFilter struct {
	types []string
	slots []int
}

// WrappedByMulti matches a node only when it sits properly nested inside
// open instances of types, in the exact given order (§4.G: "properly
// nested in the exact given order").
func WrappedByMulti(types ...string) Filter {
	return &wrappedByMultiFilter{types: types, slots: make([]int, len(types))}
}

func (f *wrappedByMultiFilter) Enter(n ast.Node) {
	k := Kind(n)
	for i, t := range f.types {
		if k == t {
			f.slots[i]++
			for j := i + 1; j < len(f.slots); j++ {
				f.slots[j] = 0
			}
			return
		}
	}
}

func (f *wrappedByMultiFilter) Leave(n ast.Node) {
	k := Kind(n)
	for i, t := range f.types {
		if k == t {
			f.slots[i]--
			return
		}
	}
}

func (f *wrappedByMultiFilter) Test(ast.Node) bool {
	for _, v := range f.slots {
		if v <= 0 {
			return false
		}
	}
	return true
}

type andFilter struct{ filters []Filter }

// And combines filters: Test requires every filter to match; Enter/Leave
// are forwarded to all of them so their internal counters stay correct.
func And(filters ...Filter) Filter { return &andFilter{filters: filters} }

func (f *andFilter) Enter(n ast.Node) {
	for _, sub := range f.filters {
		sub.Enter(n)
	}
}

func (f *andFilter) Leave(n ast.Node) {
	for _, sub := range f.filters {
		sub.Leave(n)
	}
}

func (f *andFilter) Test(n ast.Node) bool {
	for _, sub := range f.filters {
		if !sub.Test(n) {
			return false
		}
	}
	return true
}
