package mdquery

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// Transform extracts zero or more strings from a node selected by a Filter.
type Transform func(n ast.Node, source []byte) []string

// Collect runs a single preorder pass over doc applying filter then
// transform to every entering node, dropping empty results (§4.G:
// "preorder(markdownAst, filter) ▷ flatMap(transformer) ▷ drop-empty").
func Collect(doc *Document, filter Filter, transform Transform) []string {
	var out []string
	ast.Walk(doc.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			filter.Enter(n)
			if filter.Test(n) {
				out = append(out, transform(n, doc.Source)...)
			}
		} else {
			filter.Leave(n)
		}
		return ast.WalkContinue, nil
	})

	nonEmpty := make([]string, 0, len(out))
	for _, s := range out {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return nonEmpty
}

// Content extracts a node's rendered text content. Leaf blocks that keep
// their text as raw lines rather than child nodes (code blocks, HTML
// blocks) contribute those lines.
func Content(n ast.Node, source []byte) []string {
	if n.Type() == ast.TypeBlock && !n.HasChildren() && n.Lines().Len() > 0 {
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(source))
		}
		return []string{strings.TrimSpace(b.String())}
	}
	return []string{strings.TrimSpace(string(n.Text(source)))}
}

// Info extracts a fenced code block's info string (its language tag).
func Info(n ast.Node, source []byte) []string {
	fcb, ok := n.(*ast.FencedCodeBlock)
	if !ok || fcb.Info == nil {
		return nil
	}
	return []string{strings.TrimSpace(string(fcb.Info.Segment.Value(source)))}
}

// InfoAndContent joins a fenced code block's info string and body.
func InfoAndContent(n ast.Node, source []byte) []string {
	info := Info(n, source)
	body := Content(n, source)
	if len(info) == 0 {
		return body
	}
	return []string{strings.TrimSpace(info[0] + " " + body[0])}
}

// AttrAndContent joins a node's link/image attributes with its text
// content, for the link/image qualifier scopes.
func AttrAndContent(n ast.Node, source []byte) []string {
	var attrs []string
	switch v := n.(type) {
	case *ast.Link:
		attrs = append(attrs, string(v.Destination), string(v.Title))
	case *ast.AutoLink:
		attrs = append(attrs, string(v.URL(source)))
	case *ast.Image:
		attrs = append(attrs, string(v.Destination), string(v.Title))
	}

	joined := strings.TrimSpace(strings.Join(attrs, " "))
	content := Content(n, source)[0]
	return []string{strings.TrimSpace(joined + " " + content)}
}

// ContentLine splits a node's content on newlines.
func ContentLine(n ast.Node, source []byte) []string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return strings.Split(string(n.Text(source)), "\n")
	}

	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return out
}

var taskLinePattern = regexp.MustCompile(`^\[(x|X| )\]\s+(.+)$`)

// TaskMode selects which checkbox states TaskContent accepts.
type TaskMode int

const (
	// TaskAny accepts both checked and unchecked items.
	TaskAny TaskMode = 0
	// TaskDone accepts only checked ("[x]"/"[X]") items.
	TaskDone TaskMode = 1
	// TaskTodo accepts only unchecked ("[ ]") items.
	TaskTodo TaskMode = -1
)

// TaskContent returns the checkbox item's text for task list text blocks
// whose first child is a goldmark TaskCheckBox, honoring mode. It mirrors
// the raw `^\[(x|X| )\]\s+(.+)` grammar even though goldmark's TaskList
// extension has already consumed the checkbox glyph into a structured
// node, so the regexp only runs as a fallback for raw "[ ] text" content
// that was not recognized as a task (e.g. inside a disabled extension).
func TaskContent(mode TaskMode) Transform {
	return func(n ast.Node, source []byte) []string {
		checked, text, ok := taskCheckbox(n, source)
		if !ok {
			return nil
		}
		if !taskModeMatches(mode, checked) {
			return nil
		}
		return []string{text}
	}
}

func taskCheckbox(n ast.Node, source []byte) (checked bool, text string, ok bool) {
	first := n.FirstChild()
	box, isBox := first.(*extast.TaskCheckBox)
	if isBox {
		return box.IsChecked, strings.TrimSpace(string(n.Text(source))), true
	}

	raw := strings.TrimSpace(string(n.Text(source)))
	m := taskLinePattern.FindStringSubmatch(raw)
	if m == nil {
		return false, "", false
	}
	return strings.ToLower(m[1]) == "x", strings.TrimSpace(m[2]), true
}

func taskModeMatches(mode TaskMode, checked bool) bool {
	switch mode {
	case TaskDone:
		return checked
	case TaskTodo:
		return !checked
	default:
		return true
	}
}

// RegexpContent returns the space-joined first capture group of every match
// of pattern against the node's content.
func RegexpContent(pattern *regexp.Regexp) Transform {
	return func(n ast.Node, source []byte) []string {
		text := string(n.Text(source))
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			return nil
		}

		groups := make([]string, 0, len(matches))
		for _, m := range matches {
			if len(m) > 1 {
				groups = append(groups, m[1])
			}
		}
		if len(groups) == 0 {
			return nil
		}
		return []string{strings.Join(groups, " ")}
	}
}

// HeadingLevel wraps Content, dropping headings that are not exactly level
// (used by the h1..h6 scopes, which all select on Kind "Heading" and only
// differ by level).
func HeadingLevel(level int) Transform {
	return func(n ast.Node, source []byte) []string {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != level {
			return nil
		}
		return Content(n, source)
	}
}

// EmphasisLevel wraps Content, dropping emphasis nodes that are not exactly
// level (1 = em, 2 = strong).
func EmphasisLevel(level int) Transform {
	return func(n ast.Node, source []byte) []string {
		e, ok := n.(*ast.Emphasis)
		if !ok || e.Level != level {
			return nil
		}
		return Content(n, source)
	}
}

// ListOrdered wraps Content, dropping lists that do not match ordered.
func ListOrdered(ordered bool) Transform {
	return func(n ast.Node, source []byte) []string {
		l, ok := n.(*ast.List)
		if !ok || l.IsOrdered() != ordered {
			return nil
		}
		return Content(n, source)
	}
}
