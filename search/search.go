package search

import "strings"

// Search returns every line of contents containing query, in file order.
// Each matching line appears once. With a Decorate function set, every
// non-overlapping occurrence in a returned line is passed through it.
func Search(query, contents string, opts Options) []string {
	m := newMatcher(query, opts.IgnoreCase)
	results := make([]string, 0)

	for _, line := range Lines(contents) {
		if opts.Decorate == nil {
			if m.contains(line) {
				results = append(results, line)
			}
			continue
		}

		if query == "" {
			// Everything contains the empty string; there is nothing to mark.
			results = append(results, line)
			continue
		}

		spans := m.find(line)
		if len(spans) == 0 {
			continue
		}
		results = append(results, decorate(line, spans, opts.Decorate))
	}

	return results
}

// Plain is the case-sensitive search without decoration
func Plain(query, contents string) []string {
	return Search(query, contents, Options{})
}

// CaseInsensitive is the case-insensitive search without decoration
func CaseInsensitive(query, contents string) []string {
	return Search(query, contents, Options{IgnoreCase: true})
}

// decorate rebuilds line in a fresh buffer. Spans are byte offsets into the
// original line, so earlier insertions never shift later ones.
func decorate(line string, spans []span, fn Decorator) string {
	var b strings.Builder
	b.Grow(len(line))

	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.start])
		b.WriteString(fn(line[s.start:s.end]))
		last = s.end
	}
	b.WriteString(line[last:])

	return b.String()
}
