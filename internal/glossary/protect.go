package glossary

import (
	"sort"
	"strings"
)

// TermMap associates the placeholders minted by one Protect call with
// their target renderings. Request-scoped; consumed by exactly one
// restoration pass and then discarded.
type TermMap map[string]string

type matchSpan struct {
	start       int
	end         int
	placeholder string
}

// Protect replaces every glossary term occurrence in text with an ordinal
// placeholder and returns the rewritten text plus the TermMap for it.
//
// Terms are scanned longest-first so a longer term ("carbon dioxide") wins
// over any shorter term contained in it. Matching is a case-insensitive
// plain substring scan: matches inside longer words are intentional.
// Match spans are collected against the immutable input and the output is
// materialized in one pass, so text outside matches survives byte-for-byte.
func (t *Table) Protect(text string) (string, TermMap) {
	termMap := TermMap{}
	if t == nil || text == "" {
		return text, termMap
	}

	// Folding only ASCII keeps every byte offset in the scanning view
	// aligned with the original text; NewTable folds sources the same way.
	lower := asciiLower(text)

	var spans []matchSpan
	ordinal := 0
	for _, entry := range t.byLength {
		term := entry.Source
		for from := 0; from+len(term) <= len(lower); {
			rel := strings.Index(lower[from:], term)
			if rel < 0 {
				break
			}
			start := from + rel
			end := start + len(term)
			if overlapsAny(spans, start, end) {
				from = start + 1
				continue
			}

			placeholder := Placeholder(ordinal)
			termMap[placeholder] = entry.Target
			spans = append(spans, matchSpan{start: start, end: end, placeholder: placeholder})
			ordinal++
			from = end
		}
	}

	if len(spans) == 0 {
		return text, termMap
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, span := range spans {
		b.WriteString(text[prev:span.start])
		b.WriteString(span.placeholder)
		prev = span.end
	}
	b.WriteString(text[prev:])

	return b.String(), termMap
}

func overlapsAny(spans []matchSpan, start, end int) bool {
	for _, span := range spans {
		if start < span.end && span.start < end {
			return true
		}
	}
	return false
}

func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
