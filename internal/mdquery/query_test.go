package mdquery

import (
	"regexp"
	"testing"
)

const fixture = "# Title\n\n" +
	"Some *em* and **strong** text with `inline code`.\n\n" +
	"```python\n" +
	"print('hi')\n" +
	"print('there')\n" +
	"```\n\n" +
	"- [ ] todo item\n" +
	"- [x] done item\n\n" +
	"1. first\n" +
	"2. second\n"

func TestQueryHeadingContent(t *testing.T) {
	got := Query(Block, []byte(fixture), Is("Heading"), Content)
	if len(got) != 1 || got[0] != "Title" {
		t.Fatalf("Query(heading) = %#v, want [\"Title\"]", got)
	}
}

func TestQueryFencedCodeBlockInfoAndBody(t *testing.T) {
	info := Query(Block, []byte(fixture), Is("FencedCodeBlock"), Info)
	if len(info) != 1 || info[0] != "python" {
		t.Fatalf("Query(info) = %#v, want [\"python\"]", info)
	}

	body := Query(Block, []byte(fixture), Is("FencedCodeBlock"), Content)
	if len(body) != 1 {
		t.Fatalf("Query(body) = %#v, want one block", body)
	}
	if got := body[0]; got == "" {
		t.Fatalf("expected a non-empty code block body")
	}

	lines := Query(Block, []byte(fixture), Is("FencedCodeBlock"), ContentLine)
	if len(lines) != 2 || lines[0] != "print('hi')" || lines[1] != "print('there')" {
		t.Fatalf("Query(lines) = %#v, want two print lines", lines)
	}
}

func TestQueryEmphasisLevels(t *testing.T) {
	em := Query(Block, []byte(fixture), Is("Emphasis"), EmphasisLevel(1))
	if len(em) != 1 || em[0] != "em" {
		t.Fatalf("Query(em) = %#v, want [\"em\"]", em)
	}

	strong := Query(Block, []byte(fixture), Is("Emphasis"), EmphasisLevel(2))
	if len(strong) != 1 || strong[0] != "strong" {
		t.Fatalf("Query(strong) = %#v, want [\"strong\"]", strong)
	}
}

func TestQueryListOrdered(t *testing.T) {
	ol := Query(Block, []byte(fixture), Is("List"), ListOrdered(true))
	if len(ol) != 1 {
		t.Fatalf("Query(ordered list) = %#v, want one ordered list", ol)
	}

	ul := Query(Block, []byte(fixture), Is("List"), ListOrdered(false))
	if len(ul) != 1 {
		t.Fatalf("Query(unordered list) = %#v, want one unordered list", ul)
	}
}

func TestQueryTaskContentByMode(t *testing.T) {
	filter := And(
		WrappedByTag("List", "ul"),
		WrappedByMulti("List", "ListItem", "TextBlock"),
		Is("TextBlock"),
	)

	done := Query(Block, []byte(fixture), filter, TaskContent(TaskDone))
	if len(done) != 1 || done[0] != "done item" {
		t.Fatalf("Query(taskdone) = %#v, want [\"done item\"]", done)
	}

	todo := Query(Block, []byte(fixture), filter, TaskContent(TaskTodo))
	if len(todo) != 1 || todo[0] != "todo item" {
		t.Fatalf("Query(tasktodo) = %#v, want [\"todo item\"]", todo)
	}

	any := Query(Block, []byte(fixture), filter, TaskContent(TaskAny))
	if len(any) != 2 {
		t.Fatalf("Query(task) = %#v, want both task items", any)
	}

	// the ordered list's items are not wrapped by an unordered list, so the
	// task filter must not pick them up.
	for _, item := range any {
		if item == "first" || item == "second" {
			t.Fatalf("expected ordered list items excluded from task scopes, got %#v", any)
		}
	}
}

func TestQueryRegexpContentDropsNoMatch(t *testing.T) {
	pattern := regexp.MustCompile(`==(.+?)==`)
	got := Query(Block, []byte("no highlights here"), Is("Text"), RegexpContent(pattern))
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestParseMemoizesIdenticalSource(t *testing.T) {
	src := []byte(fixture)
	first := Parse(Block, src)
	second := Parse(Block, src)
	if first != second {
		t.Fatalf("expected Parse to return the cached Document for identical source")
	}

	third := Parse(Block, []byte("different"))
	if third == first {
		t.Fatalf("expected Parse to reparse when the source changes")
	}
}
