package qualifier

import (
	"regexp"

	"github.com/yuin/goldmark/ast"

	"github.com/kestrel-notes/mdfind/internal/mdquery"
)

// kindKeyword matches any node whose Kind is one of types — the single case
// the mdquery package's named filters don't cover (blockcode needs both
// fenced and indented code blocks).
type kindKeyword struct{ types []string }

func kindIn(types ...string) mdquery.Filter { return &kindKeyword{types: types} }

func (f *kindKeyword) Enter(ast.Node) {}
func (f *kindKeyword) Leave(ast.Node) {}
func (f *kindKeyword) Test(n ast.Node) bool {
	k := mdquery.Kind(n)
	for _, t := range f.types {
		if k == t {
			return true
		}
	}
	return false
}

var highlightPattern = regexp.MustCompile(`==(.+?)==`)

// taskTextBlock is the filter shared by task/taskdone/tasktodo: a text block
// properly nested inside list > list-item, matching spec §4.G's worked
// example of isolating bullet-list items from ordered-list content.
func taskTextBlock() mdquery.Filter {
	return mdquery.And(
		mdquery.WrappedByTag("List", "ul"),
		mdquery.WrappedByMulti("List", "ListItem", "TextBlock"),
		mdquery.Is("TextBlock"),
	)
}

func markdownScope(scope, name string, filter mdquery.Filter, transform mdquery.Transform) Entry {
	return Entry{
		Scope: scope,
		Name:  name,
		Query: func(rec *FileRecord) (Value, error) {
			return StrList(mdquery.Query(mdquery.Block, rec.Data, filter, transform)), nil
		},
	}
}

// MarkdownEntries returns the scopes that query the parsed Markdown AST
// rather than the raw file record (distilled spec §4.G).
func MarkdownEntries() []Entry {
	codeBlockFilter := kindIn("FencedCodeBlock", "CodeBlock")
	taskFilter := taskTextBlock()

	entries := []Entry{
		markdownScope("blockcode", "Code block", codeBlockFilter, mdquery.Content),
		markdownScope("blockcodelang", "Code block language", mdquery.Is("FencedCodeBlock"), mdquery.Info),
		markdownScope("blockcodebody", "Code block body", codeBlockFilter, mdquery.Content),
		markdownScope("blockcodeline", "Code block line", codeBlockFilter, mdquery.ContentLine),
		markdownScope("blockhtml", "Raw HTML block", mdquery.Is("HTMLBlock"), mdquery.Content),
		markdownScope("blockquote", "Blockquote", mdquery.Is("Blockquote"), mdquery.Content),
		markdownScope("table", "Table", mdquery.Is("Table"), mdquery.Content),
		markdownScope("thead", "Table header row", mdquery.Is("TableHeader"), mdquery.Content),
		markdownScope("tbody", "Table body row", mdquery.Is("TableRow"), mdquery.Content),
		markdownScope("ol", "Ordered list", mdquery.Is("List"), mdquery.ListOrdered(true)),
		markdownScope("ul", "Unordered list", mdquery.Is("List"), mdquery.ListOrdered(false)),
		markdownScope("task", "Task list item", taskFilter, mdquery.TaskContent(mdquery.TaskAny)),
		markdownScope("taskdone", "Checked task list item", taskFilter, mdquery.TaskContent(mdquery.TaskDone)),
		markdownScope("tasktodo", "Unchecked task list item", taskFilter, mdquery.TaskContent(mdquery.TaskTodo)),
		markdownScope("head", "Heading", mdquery.Is("Heading"), mdquery.Content),
		markdownScope("h1", "Heading level 1", mdquery.Is("Heading"), mdquery.HeadingLevel(1)),
		markdownScope("h2", "Heading level 2", mdquery.Is("Heading"), mdquery.HeadingLevel(2)),
		markdownScope("h3", "Heading level 3", mdquery.Is("Heading"), mdquery.HeadingLevel(3)),
		markdownScope("h4", "Heading level 4", mdquery.Is("Heading"), mdquery.HeadingLevel(4)),
		markdownScope("h5", "Heading level 5", mdquery.Is("Heading"), mdquery.HeadingLevel(5)),
		markdownScope("h6", "Heading level 6", mdquery.Is("Heading"), mdquery.HeadingLevel(6)),
		markdownScope("highlight", "Highlighted text", mdquery.Is("Text"), mdquery.RegexpContent(highlightPattern)),
		markdownScope("image", "Image", mdquery.Is("Image"), mdquery.AttrAndContent),
		markdownScope("code", "Inline code", mdquery.Is("CodeSpan"), mdquery.Content),
		markdownScope("link", "Link", kindIn("Link", "AutoLink"), mdquery.AttrAndContent),
		markdownScope("strong", "Strong emphasis", mdquery.Is("Emphasis"), mdquery.EmphasisLevel(2)),
		markdownScope("em", "Emphasis", mdquery.Is("Emphasis"), mdquery.EmphasisLevel(1)),
		markdownScope("del", "Strikethrough", mdquery.Is("Strikethrough"), mdquery.Content),
	}

	return entries
}
