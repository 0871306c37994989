package finder

import (
	"fmt"
	"strings"

	"github.com/kestrel-notes/mdfind/internal/qualifier"
)

// Grammar returns a BNF description of the query language built from the
// current registry's scope and operator lists (distilled spec §6
// "getGrammar"; §8 invariant 6: every built-in scope appears exactly once).
func (f *Finder) Grammar() string {
	scopes := f.registry.Scopes()
	ops := qualifier.Operators()

	var b strings.Builder
	b.WriteString("query      := expression\n")
	b.WriteString("expression := term (OR term)*\n")
	b.WriteString("term       := factor ((AND | NOT) factor)*\n")
	b.WriteString("factor     := QUALIFIER? match\n")
	b.WriteString("match      := PHRASE | KEYWORD | REGEXP | '(' expression ')'\n")
	b.WriteString("QUALIFIER  := SCOPE OPERATOR\n")
	fmt.Fprintf(&b, "SCOPE      := %s\n", strings.Join(scopes, " | "))
	fmt.Fprintf(&b, "OPERATOR   := %s\n", strings.Join(ops, " | "))
	b.WriteString("PHRASE     := '\"' ... '\"'\n")
	b.WriteString("REGEXP     := '/' ... '/'\n")
	b.WriteString("KEYWORD    := [^\\s\"()|]+\n")
	return b.String()
}
