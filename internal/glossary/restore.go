package glossary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strategy restores target renderings into translated text from a TermMap.
// Implementations must be idempotent: restoring text that carries no
// remaining placeholders is a no-op.
type Strategy interface {
	Restore(translated string, terms TermMap) string
	Name() string
}

// NewStrategy resolves a strategy by configuration name.
func NewStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "conservative":
		return Conservative{}, nil
	case "heuristic":
		return Heuristic{}, nil
	default:
		return nil, fmt.Errorf("unknown restore strategy %q (available: conservative, heuristic)", name)
	}
}

// Conservative replaces exact placeholder tokens only. Placeholders the
// engine mangled stay visible in the output rather than being guessed at,
// so surrounding translation is never corrupted.
type Conservative struct{}

func (Conservative) Name() string { return "conservative" }

func (Conservative) Restore(translated string, terms TermMap) string {
	result := translated
	for _, entry := range sortedTermEntries(terms) {
		result, _ = replaceExactToken(result, entry.placeholder, entry.target)
	}
	return result
}

// Heuristic extends conservative restoration with transliteration repair:
// engines sometimes render the ASCII placeholder prefix in the target
// script ("SCI0" -> "एससीआई0", possibly with spaces between letter names or
// Devanagari digits). Higher recall, higher risk.
type Heuristic struct{}

func (Heuristic) Name() string { return "heuristic" }

func (Heuristic) Restore(translated string, terms TermMap) string {
	result := translated

	var outstanding []termEntry
	for _, entry := range sortedTermEntries(terms) {
		var replaced, repaired bool
		result, replaced = replaceExactToken(result, entry.placeholder, entry.target)
		result, repaired = repairTransliterated(result, entry.ordinal, entry.target)
		if !replaced && !repaired {
			outstanding = append(outstanding, entry)
		}
	}

	// A transliterated prefix that lost its ordinal is only safe to repair
	// when a single entry remains unresolved; with two or more outstanding
	// entries any assignment would be a guess.
	if len(outstanding) == 1 {
		result = replaceBareTransliteration(result, outstanding[0].target)
	}

	return result
}

type termEntry struct {
	placeholder string
	target      string
	ordinal     int
}

// sortedTermEntries orders a TermMap by ascending ordinal so earlier,
// presumably more reliable restorations run first.
func sortedTermEntries(terms TermMap) []termEntry {
	entries := make([]termEntry, 0, len(terms))
	for placeholder, target := range terms {
		entries = append(entries, termEntry{
			placeholder: placeholder,
			target:      target,
			ordinal:     ordinalOf(placeholder),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ordinal != entries[j].ordinal {
			return entries[i].ordinal < entries[j].ordinal
		}
		return entries[i].placeholder < entries[j].placeholder
	})
	return entries
}

// replaceExactToken replaces occurrences of token that are not immediately
// followed by another ASCII digit. The digit guard keeps SCI1 from eating
// the front of SCI10.
func replaceExactToken(s, token, replacement string) (string, bool) {
	if token == "" || !strings.Contains(s, token) {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s))
	replaced := false
	from := 0
	for from < len(s) {
		rel := strings.Index(s[from:], token)
		if rel < 0 {
			break
		}
		start := from + rel
		end := start + len(token)
		if end < len(s) && s[end] >= '0' && s[end] <= '9' {
			b.WriteString(s[from : start+1])
			from = start + 1
			continue
		}
		b.WriteString(s[from:start])
		b.WriteString(replacement)
		replaced = true
		from = end
	}
	b.WriteString(s[from:])

	if !replaced {
		return s, false
	}
	return b.String(), true
}

// Devanagari letter-name rendering of S-C-I, with optional whitespace
// between letters, followed by an ordinal in ASCII or Devanagari digits.
var translitOrdinalRe = regexp.MustCompile(`एस\s*सी\s*आ[ईइ]\s*([0-9०-९]+)`)

// The same prefix with no trailing ordinal requirement.
var translitPrefixRe = regexp.MustCompile(`एस\s*सी\s*आ[ईइ]`)

// repairTransliterated replaces the first transliterated placeholder whose
// recovered ordinal matches.
func repairTransliterated(s string, ordinal int, replacement string) (string, bool) {
	matches := translitOrdinalRe.FindAllStringSubmatchIndex(s, -1)
	for _, m := range matches {
		digits := s[m[2]:m[3]]
		if parseOrdinalDigits(digits) != ordinal {
			continue
		}
		return s[:m[0]] + replacement + s[m[1]:], true
	}
	return s, false
}

// replaceBareTransliteration replaces the first transliterated prefix that
// carries no ordinal at all.
func replaceBareTransliteration(s, replacement string) string {
	matches := translitPrefixRe.FindAllStringIndex(s, -1)
	for _, m := range matches {
		if followedByOrdinal(s, m[1]) {
			continue
		}
		return s[:m[0]] + replacement + s[m[1]:]
	}
	return s
}

func followedByOrdinal(s string, from int) bool {
	i := from
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		return isOrdinalDigit(r)
	}
	return false
}

func isOrdinalDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '०' && r <= '९')
}

func parseOrdinalDigits(digits string) int {
	value := 0
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
			value = value*10 + int(r-'0')
		case r >= '०' && r <= '९':
			value = value*10 + int(r-'०')
		default:
			return -1
		}
	}
	return value
}
