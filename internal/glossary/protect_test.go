package glossary

import (
	"strings"
	"testing"
)

func TestProtectThreeTerms(t *testing.T) {
	t.Parallel()

	protected, terms := Default().Protect("Photosynthesis produces oxygen and glucose.")

	// Ordinals follow term-major order: longest term first, then position.
	if protected != "SCI0 produces SCI2 and SCI1." {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if len(terms) != 3 {
		t.Fatalf("expected 3 term map entries, got %d: %v", len(terms), terms)
	}
	if terms["SCI0"] != "प्रकाश संश्लेषण" {
		t.Fatalf("unexpected rendering for SCI0: %q", terms["SCI0"])
	}
	if terms["SCI1"] != "ग्लूकोज" {
		t.Fatalf("unexpected rendering for SCI1: %q", terms["SCI1"])
	}
	if terms["SCI2"] != "ऑक्सीजन" {
		t.Fatalf("unexpected rendering for SCI2: %q", terms["SCI2"])
	}
}

func TestProtectNoTerms(t *testing.T) {
	t.Parallel()

	input := "The sky is blue."
	protected, terms := Default().Protect(input)
	if protected != input {
		t.Fatalf("expected text unchanged, got %q", protected)
	}
	if len(terms) != 0 {
		t.Fatalf("expected empty term map, got %v", terms)
	}
}

func TestProtectEmptyInput(t *testing.T) {
	t.Parallel()

	protected, terms := Default().Protect("")
	if protected != "" {
		t.Fatalf("expected empty output, got %q", protected)
	}
	if len(terms) != 0 {
		t.Fatalf("expected empty term map, got %v", terms)
	}
}

func TestProtectLongestMatchPrecedence(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]Entry{
		{Source: "amino acid", Target: "अमीनो अम्ल"},
		{Source: "acid", Target: "अम्ल"},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	protected, terms := table.Protect("Amino acid forms proteins.")
	if protected != "SCI0 forms proteins." {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if len(terms) != 1 {
		t.Fatalf("expected a single placeholder covering the full phrase, got %v", terms)
	}
	if terms["SCI0"] != "अमीनो अम्ल" {
		t.Fatalf("unexpected rendering: %q", terms["SCI0"])
	}
}

func TestProtectRepeatedTermGetsDistinctOrdinals(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]Entry{{Source: "acid", Target: "अम्ल"}})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	protected, terms := table.Protect("Acid reacts with acid.")
	if protected != "SCI0 reacts with SCI1." {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if terms["SCI0"] != "अम्ल" || terms["SCI1"] != "अम्ल" {
		t.Fatalf("unexpected term map: %v", terms)
	}
}

func TestProtectOrdinalsAreSequential(t *testing.T) {
	t.Parallel()

	_, terms := Default().Protect("Energy, force, gravity and light.")
	if len(terms) != 4 {
		t.Fatalf("expected 4 placeholders, got %v", terms)
	}
	for i := 0; i < len(terms); i++ {
		if _, ok := terms[Placeholder(i)]; !ok {
			t.Fatalf("missing ordinal %d in term map %v", i, terms)
		}
	}
}

func TestProtectMatchesInsideWords(t *testing.T) {
	t.Parallel()

	// Plain substring semantics: "atom" inside "Atoms" is protected too.
	protected, terms := Default().Protect("Atoms bond.")
	if protected != "SCI0s bond." {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if terms["SCI0"] != "परमाणु" {
		t.Fatalf("unexpected rendering: %q", terms["SCI0"])
	}
}

func TestProtectPreservesNonASCIIBytes(t *testing.T) {
	t.Parallel()

	protected, terms := Default().Protect("PHOTOSYNTHESIS और ऑक्सीजन")
	if protected != "SCI0 और ऑक्सीजन" {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if len(terms) != 1 {
		t.Fatalf("expected one entry, got %v", terms)
	}
	if !strings.Contains(protected, "और ऑक्सीजन") {
		t.Fatalf("non-ASCII text must survive byte-identically, got %q", protected)
	}
}

func TestProtectNilTable(t *testing.T) {
	t.Parallel()

	var table *Table
	protected, terms := table.Protect("oxygen")
	if protected != "oxygen" {
		t.Fatalf("unexpected protected text: %q", protected)
	}
	if len(terms) != 0 {
		t.Fatalf("expected empty term map, got %v", terms)
	}
}
