package qualifier

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kestrel-notes/mdfind/internal/dateval"
	"github.com/kestrel-notes/mdfind/internal/sizeunit"
)

var hasImagePattern = regexp.MustCompile(`!\[.*?\]\(.*\)|<img.*?src=".*?"`)
var hanPattern = regexp.MustCompile(`\p{Han}`)

// BaseEntries returns the scopes that operate directly on a file record
// without needing a Markdown parse (§4.A "Base (operate on file record)").
func BaseEntries() []Entry {
	return []Entry{
		{
			Scope: "default",
			Name:  "Default",
			Query: func(rec *FileRecord) (Value, error) {
				return Str(string(rec.Data) + "\n" + rec.Path), nil
			},
		},
		{
			Scope: "path",
			Name:  "Path",
			Query: func(rec *FileRecord) (Value, error) { return Str(rec.Path), nil },
		},
		{
			Scope: "file",
			Name:  "File name",
			Query: func(rec *FileRecord) (Value, error) { return Str(rec.File), nil },
		},
		{
			Scope: "ext",
			Name:  "Extension",
			Query: func(rec *FileRecord) (Value, error) {
				return Str(filepath.Ext(rec.File)), nil
			},
		},
		{
			Scope: "content",
			Name:  "Content",
			Query: func(rec *FileRecord) (Value, error) { return Str(string(rec.Data)), nil },
		},
		{
			Scope:    "time",
			Name:     "Modified time",
			Validate: ValidateComparable(validateDate),
			Cast: func(operand string, _ OperandKind) (Value, error) {
				ms, err := dateval.MidnightMillis(operand)
				if err != nil {
					return Value{}, err
				}
				return Millis(ms), nil
			},
			Query: func(rec *FileRecord) (Value, error) {
				t := time.UnixMilli(rec.Stats.Mtime)
				return Millis(dateval.TruncateMillis(t)), nil
			},
		},
		{
			Scope:    "size",
			Name:     "File size",
			Validate: ValidateComparable(validateSize),
			Cast: func(operand string, _ OperandKind) (Value, error) {
				bytesVal, err := sizeunit.Parse(operand)
				if err != nil {
					return Value{}, err
				}
				return Num(float64(bytesVal)), nil
			},
			Query: func(rec *FileRecord) (Value, error) {
				return Num(float64(rec.Stats.Size)), nil
			},
		},
		{
			Scope:    "linenum",
			Name:     "Line count",
			Validate: ValidateComparable(validateNumber),
			Cast:     CastNumber,
			Query: func(rec *FileRecord) (Value, error) {
				return Num(float64(len(strings.Split(string(rec.Data), "\n")))), nil
			},
		},
		{
			Scope:    "charnum",
			Name:     "Character count",
			Validate: ValidateComparable(validateNumber),
			Cast:     CastNumber,
			Query: func(rec *FileRecord) (Value, error) {
				return Num(float64(utf8.RuneCountInString(string(rec.Data)))), nil
			},
		},
		{
			Scope:    "chinesenum",
			Name:     "Chinese character count",
			Validate: ValidateComparable(validateNumber),
			Cast:     CastNumber,
			Query: func(rec *FileRecord) (Value, error) {
				return Num(float64(len(hanPattern.FindAllString(string(rec.Data), -1)))), nil
			},
		},
		{
			Scope:    "crlf",
			Name:     "Uses CRLF line endings",
			Validate: ValidateBoolean,
			Cast:     CastBoolean,
			Query: func(rec *FileRecord) (Value, error) {
				return Bool(bytes.Contains(rec.Data, []byte("\r\n"))), nil
			},
		},
		{
			Scope:    "hasimage",
			Name:     "Contains an image",
			Validate: ValidateBoolean,
			Cast:     CastBoolean,
			Query: func(rec *FileRecord) (Value, error) {
				return Bool(hasImagePattern.MatchString(string(rec.Data))), nil
			},
		},
		{
			Scope:    "haschinese",
			Name:     "Contains Chinese characters",
			Validate: ValidateBoolean,
			Cast:     CastBoolean,
			Query: func(rec *FileRecord) (Value, error) {
				return Bool(hanPattern.MatchString(string(rec.Data))), nil
			},
		},
		{
			Scope: "line",
			Name:  "Lines",
			Query: func(rec *FileRecord) (Value, error) {
				raw := strings.Split(string(rec.Data), "\n")
				lines := make([]string, len(raw))
				for i, l := range raw {
					lines[i] = strings.TrimSpace(l)
				}
				return StrList(lines), nil
			},
		},
	}
}

func validateDate(operand string) error {
	_, err := dateval.MidnightMillis(operand)
	return err
}

func validateSize(operand string) error {
	if !sizeunit.Valid(operand) {
		_, err := sizeunit.Parse(operand)
		return err
	}
	return nil
}

func validateNumber(operand string) error {
	_, err := CastNumber(operand, Keyword)
	return err
}
