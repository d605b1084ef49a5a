package segment

import (
	"strings"
	"testing"
)

func TestUnitsPrefersLines(t *testing.T) {
	t.Parallel()

	units := Units("First line. Still first.\n\n  Second line  \nThird")
	want := []string{"First line. Still first.", "Second line", "Third"}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %v", len(want), units)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Fatalf("unit %d mismatch: got %q want %q", i, units[i], want[i])
		}
	}
}

func TestUnitsSplitsSentences(t *testing.T) {
	t.Parallel()

	units := Units("What is energy? Energy is the capacity to do work! It is measured in joules.")
	want := []string{
		"What is energy?",
		"Energy is the capacity to do work!",
		"It is measured in joules.",
	}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %v", len(want), units)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Fatalf("unit %d mismatch: got %q want %q", i, units[i], want[i])
		}
	}
}

func TestUnitsKeepsPunctuationRuns(t *testing.T) {
	t.Parallel()

	units := Units("Really?! Yes.")
	if len(units) != 2 || units[0] != "Really?!" || units[1] != "Yes." {
		t.Fatalf("unexpected units: %v", units)
	}
}

func TestUnitsSingleSentence(t *testing.T) {
	t.Parallel()

	units := Units("No terminal punctuation here")
	if len(units) != 1 || units[0] != "No terminal punctuation here" {
		t.Fatalf("unexpected units: %v", units)
	}
}

func TestUnitsBlankInput(t *testing.T) {
	t.Parallel()

	if units := Units("   \n \n  "); len(units) != 0 {
		t.Fatalf("expected no units for blank input, got %v", units)
	}
	if units := Units(""); len(units) != 0 {
		t.Fatalf("expected no units for empty input, got %v", units)
	}
}

func TestChunkShortTextPassesThrough(t *testing.T) {
	t.Parallel()

	chunks := Chunk("Short text.", 400)
	if len(chunks) != 1 || chunks[0] != "Short text." {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestChunkPacksSentences(t *testing.T) {
	t.Parallel()

	text := "Alpha beta gamma. Delta epsilon zeta. Eta theta iota."
	chunks := Chunk(text, 40)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %v", chunks)
	}
	if chunks[0] != "Alpha beta gamma. Delta epsilon zeta." {
		t.Fatalf("unexpected first chunk: %q", chunks[0])
	}
	if chunks[1] != "Eta theta iota." {
		t.Fatalf("unexpected second chunk: %q", chunks[1])
	}
}

func TestChunkSplitsLongSentenceOnCommas(t *testing.T) {
	t.Parallel()

	text := "one two three four, five six seven eight, nine ten eleven twelve"
	chunks := Chunk(text, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected the sentence to split, got %v", chunks)
	}
	for _, chunk := range chunks {
		if len(chunk) > 30 {
			t.Fatalf("chunk exceeds cap: %q (%d chars)", chunk, len(chunk))
		}
	}
	joined := strings.Join(chunks, " ")
	for _, word := range strings.Fields("one two three four five six seven eight nine ten eleven twelve") {
		if !strings.Contains(joined, word) {
			t.Fatalf("chunking lost %q: %v", word, chunks)
		}
	}
}

func TestChunkCommaFreeOversizeSentence(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x", 50)
	chunks := Chunk(text, 30)
	if len(chunks) != 1 || chunks[0] != text {
		t.Fatalf("comma-free oversize sentence must pass through whole, got %v", chunks)
	}
}

func TestChunkRespectsCapAcrossMixedInput(t *testing.T) {
	t.Parallel()

	text := "Short one. " + strings.Repeat("word, ", 20) + "end. Final bit."
	for _, chunk := range Chunk(text, 50) {
		if len(chunk) > 50 {
			t.Fatalf("chunk exceeds cap: %q (%d chars)", chunk, len(chunk))
		}
	}
}
