package qualifier

import (
	"testing"
	"time"
)

func getQualifier(t *testing.T, scope string) *Qualifier {
	t.Helper()
	for _, e := range BaseEntries() {
		if e.Scope == scope {
			return e.Build()
		}
	}
	t.Fatalf("no base entry for scope %q", scope)
	return nil
}

func TestSizeQualifierCastAndCompare(t *testing.T) {
	q := getQualifier(t, "size")

	cast, err := q.Cast("10kb", Keyword)
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}

	rec := &FileRecord{Stats: FileStats{Size: 20 * 1024}}
	queryVal, err := q.Query(rec)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if !q.MatchKeyword(">", cast, queryVal) {
		t.Fatalf("expected a 20KiB file to match size>10kb")
	}
	if q.MatchKeyword("<", cast, queryVal) {
		t.Fatalf("did not expect a 20KiB file to match size<10kb")
	}
}

func TestSizeQualifierValidateRejectsMissingUnit(t *testing.T) {
	q := getQualifier(t, "size")
	if err := q.Validate(">", "10", Keyword); err == nil {
		t.Fatalf("expected an error for a size operand with no unit")
	}
}

func TestSizeQualifierValidateRejectsColon(t *testing.T) {
	q := getQualifier(t, "size")
	if err := q.Validate(":", "10kb", Keyword); err == nil {
		t.Fatalf("expected an error for the \":\" operator on a comparable scope")
	}
}

func TestTimeQualifierTruncatesMtimeToMidnight(t *testing.T) {
	q := getQualifier(t, "time")

	cast, err := q.Cast("2024-03-12", Keyword)
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}

	mtime := time.Date(2024, time.March, 12, 18, 45, 0, 0, time.Local)
	rec := &FileRecord{Stats: FileStats{Mtime: mtime.UnixMilli()}}
	queryVal, err := q.Query(rec)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if !q.MatchKeyword("=", cast, queryVal) {
		t.Fatalf("expected an 18:45 mtime on 2024-03-12 to equal the truncated date operand")
	}
}

func TestTimeQualifierValidateRejectsColon(t *testing.T) {
	q := getQualifier(t, "time")
	if err := q.Validate(":", "2024-03-12", Keyword); err == nil {
		t.Fatalf("expected an error: \":\" is not a comparable operator")
	}
}

func TestCrlfQualifierDetectsCrlf(t *testing.T) {
	q := getQualifier(t, "crlf")

	cast, err := q.Cast("true", Keyword)
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}

	crlfRec := &FileRecord{Data: []byte("line one\r\nline two\r\n")}
	lfRec := &FileRecord{Data: []byte("line one\nline two\n")}

	crlfVal, _ := q.Query(crlfRec)
	lfVal, _ := q.Query(lfRec)

	if !q.MatchKeyword("=", cast, crlfVal) {
		t.Fatalf("expected a CRLF file to match crlf=true")
	}
	if q.MatchKeyword("=", cast, lfVal) {
		t.Fatalf("did not expect an LF file to match crlf=true")
	}
}

func TestHasImageQualifierDetectsMarkdownImage(t *testing.T) {
	q := getQualifier(t, "hasimage")
	cast, _ := q.Cast("true", Keyword)

	withImage := &FileRecord{Data: []byte("![alt](pic.png)")}
	without := &FileRecord{Data: []byte("no images here")}

	withVal, _ := q.Query(withImage)
	withoutVal, _ := q.Query(without)

	if !q.MatchKeyword("=", cast, withVal) {
		t.Fatalf("expected a file with a Markdown image to match hasimage=true")
	}
	if q.MatchKeyword("=", cast, withoutVal) {
		t.Fatalf("did not expect a file without an image to match hasimage=true")
	}
}

func TestChineseNumQualifierCountsHanCharacters(t *testing.T) {
	q := getQualifier(t, "chinesenum")
	rec := &FileRecord{Data: []byte("hello 你好 world")}

	queryVal, err := q.Query(rec)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if queryVal.Num != 2 {
		t.Fatalf("expected 2 Han characters, got %v", queryVal.Num)
	}
}

func TestLineQualifierSplitsAndTrims(t *testing.T) {
	q := getQualifier(t, "line")
	rec := &FileRecord{Data: []byte("  first  \nsecond\n")}

	queryVal, err := q.Query(rec)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(queryVal.StrList) != 3 {
		t.Fatalf("expected 3 lines (including the trailing empty one), got %#v", queryVal.StrList)
	}
	if queryVal.StrList[0] != "first" {
		t.Fatalf("expected the first line trimmed to %q, got %q", "first", queryVal.StrList[0])
	}
}

func TestDefaultQualifierIncludesPathAndData(t *testing.T) {
	q := getQualifier(t, "default")
	rec := &FileRecord{Path: "/notes/a.md", Data: []byte("hello")}

	queryVal, err := q.Query(rec)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if !q.MatchKeyword(":", Str("hello"), queryVal) {
		t.Fatalf("expected default scope to include file content")
	}
	if !q.MatchKeyword(":", Str("/notes/a.md"), queryVal) {
		t.Fatalf("expected default scope to include the file path")
	}
}
