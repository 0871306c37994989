package mdquery

// Query parses source (memoized) and runs filter/transform over it in one
// step — the entry point qualifier scopes call.
func Query(mode Mode, source []byte, filter Filter, transform Transform) []string {
	doc := Parse(mode, source)
	return Collect(doc, filter, transform)
}
