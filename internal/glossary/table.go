// Package glossary implements the term-protection core: a fixed
// source-term -> target-rendering vocabulary, extraction of glossary terms
// into tokenizer-safe ordinal placeholders before translation, and
// restoration of the fixed renderings afterward.
package glossary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const placeholderPrefix = "SCI"

// Entry is one immutable glossary pair.
type Entry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Table is the read-only glossary shared across requests. Built once at
// startup, never mutated afterward.
type Table struct {
	entries  []Entry
	bySource map[string]string
	byTarget map[string]string
	byLength []Entry
}

// NewTable builds a Table from entries. Sources are folded with the same
// ASCII-level case rule the matcher scans with, so a source containing a
// non-ASCII uppercase letter is rejected: its uppercase occurrences could
// never match. A source repeated later in the slice overrides the earlier
// pair, so overlay entries appended after the built-ins take precedence.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("glossary requires at least one entry")
	}

	bySource := make(map[string]string, len(entries))
	order := make([]string, 0, len(entries))
	for i, entry := range entries {
		source := asciiLower(strings.TrimSpace(entry.Source))
		target := strings.TrimSpace(entry.Target)
		if source == "" {
			return nil, fmt.Errorf("glossary entry %d: source term is empty", i)
		}
		if source != strings.ToLower(source) {
			return nil, fmt.Errorf("glossary entry %d (%q): source term matching is ASCII-case-insensitive; write non-ASCII letters in lowercase", i, entry.Source)
		}
		if target == "" {
			return nil, fmt.Errorf("glossary entry %d (%q): target rendering is empty", i, source)
		}
		if _, seen := bySource[source]; !seen {
			order = append(order, source)
		}
		bySource[source] = target
	}

	deduped := make([]Entry, 0, len(order))
	byTarget := make(map[string]string, len(order))
	for _, source := range order {
		target := bySource[source]
		deduped = append(deduped, Entry{Source: source, Target: target})
		byTarget[target] = source
	}

	byLength := make([]Entry, len(deduped))
	copy(byLength, deduped)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i].Source) > len(byLength[j].Source)
	})

	return &Table{
		entries:  deduped,
		bySource: bySource,
		byTarget: byTarget,
		byLength: byLength,
	}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the Table built from the built-in vocabulary.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := NewTable(builtinEntries)
		if err != nil {
			panic(fmt.Sprintf("built-in glossary is invalid: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}

// Entries returns the table's pairs in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of unique source terms.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the target rendering for a source term, case-insensitively.
func (t *Table) Lookup(source string) (string, bool) {
	if t == nil {
		return "", false
	}
	target, ok := t.bySource[asciiLower(strings.TrimSpace(source))]
	return target, ok
}

// Reverse returns the source term for a target rendering. When two sources
// share a rendering, the later-declared source wins.
func (t *Table) Reverse(target string) (string, bool) {
	if t == nil {
		return "", false
	}
	source, ok := t.byTarget[strings.TrimSpace(target)]
	return source, ok
}

// Placeholder renders the synthetic token for an ordinal: SCI0, SCI1, ...
func Placeholder(ordinal int) string {
	return placeholderPrefix + strconv.Itoa(ordinal)
}

// IsPlaceholder reports whether s is exactly one placeholder token.
func IsPlaceholder(s string) bool {
	if !strings.HasPrefix(s, placeholderPrefix) {
		return false
	}
	digits := s[len(placeholderPrefix):]
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// ordinalOf recovers the ordinal from a placeholder token. Tokens without
// a digit run sort as ordinal 0.
func ordinalOf(placeholder string) int {
	start := -1
	for i := 0; i < len(placeholder); i++ {
		c := placeholder[i]
		if c >= '0' && c <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(placeholder) && placeholder[end] >= '0' && placeholder[end] <= '9' {
		end++
	}
	ordinal, err := strconv.Atoi(placeholder[start:end])
	if err != nil {
		return 0
	}
	return ordinal
}
