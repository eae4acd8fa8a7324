package search

import (
	"strings"
	"unicode"
)

// span is a half-open byte range into an original line
type span struct {
	start, end int
}

// matcher locates occurrences of a query in lines
type matcher struct {
	query      string
	folded     []rune
	ignoreCase bool
}

func newMatcher(query string, ignoreCase bool) *matcher {
	m := &matcher{
		query:      query,
		ignoreCase: ignoreCase,
	}
	if ignoreCase {
		m.folded, _ = fold(query)
	}
	return m
}

func (m *matcher) contains(line string) bool {
	if !m.ignoreCase {
		return strings.Contains(line, m.query)
	}
	if len(m.folded) == 0 {
		return true
	}
	runes, _ := fold(line)
	return indexRunes(runes, m.folded, 0) >= 0
}

// find returns the non-overlapping occurrences of the query in line, scanning
// left to right. It returns nil for an empty query.
func (m *matcher) find(line string) []span {
	if m.query == "" {
		return nil
	}

	var spans []span
	if !m.ignoreCase {
		for off := 0; off <= len(line); {
			idx := strings.Index(line[off:], m.query)
			if idx == -1 {
				break
			}
			start := off + idx
			end := start + len(m.query)
			spans = append(spans, span{start: start, end: end})
			off = end
		}
		return spans
	}

	// Folding is rune to rune, so rune i of the folded line is rune i of the
	// original and offsets maps it back to a byte position.
	runes, offsets := fold(line)
	for i := 0; ; {
		idx := indexRunes(runes, m.folded, i)
		if idx == -1 {
			break
		}
		end := idx + len(m.folded)
		spans = append(spans, span{start: offsets[idx], end: offsets[end]})
		i = end
	}
	return spans
}

// fold lowercases s one rune at a time. offsets[i] is the byte offset in s of
// rune i; offsets[len(runes)] is len(s).
func fold(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

// indexRunes returns the first index >= from at which sub occurs in runes, or -1
func indexRunes(runes, sub []rune, from int) int {
	n := len(sub)
	for i := from; i+n <= len(runes); i++ {
		match := true
		for j := 0; j < n; j++ {
			if runes[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
