package glossary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table := Default()
	if table.Len() != 72 {
		t.Fatalf("expected 72 built-in terms, got %d", table.Len())
	}

	target, ok := table.Lookup("Photosynthesis")
	if !ok || target != "प्रकाश संश्लेषण" {
		t.Fatalf("unexpected lookup result: %q ok=%t", target, ok)
	}

	source, ok := table.Reverse("ऑक्सीजन")
	if !ok || source != "oxygen" {
		t.Fatalf("unexpected reverse lookup: %q ok=%t", source, ok)
	}

	// "principle" and "theory" share a rendering; the later declaration wins.
	source, ok = table.Reverse("सिद्धांत")
	if !ok || source != "theory" {
		t.Fatalf("unexpected reverse lookup for shared rendering: %q ok=%t", source, ok)
	}
}

func TestNewTableLaterEntryOverrides(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]Entry{
		{Source: "Acid", Target: "पुराना"},
		{Source: "acid", Target: "अम्ल"},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 deduped entry, got %d", table.Len())
	}
	if target, _ := table.Lookup("ACID"); target != "अम्ल" {
		t.Fatalf("expected later entry to win, got %q", target)
	}
}

func TestNewTableRejectsEmptyPairs(t *testing.T) {
	t.Parallel()

	if _, err := NewTable(nil); err == nil {
		t.Fatal("expected error for empty table")
	}
	if _, err := NewTable([]Entry{{Source: " ", Target: "x"}}); err == nil {
		t.Fatal("expected error for blank source")
	}
	if _, err := NewTable([]Entry{{Source: "x", Target: ""}}); err == nil {
		t.Fatal("expected error for blank target")
	}
}

func TestNewTableASCIICaseFolding(t *testing.T) {
	t.Parallel()

	// Sources must fold the way the matcher scans: ASCII case only. A
	// non-ASCII uppercase letter would make the term unmatchable in its
	// uppercase spellings, so it is rejected up front.
	if _, err := NewTable([]Entry{{Source: "Énergie", Target: "ऊर्जा"}}); err == nil {
		t.Fatal("expected error for non-ASCII uppercase source")
	}

	table, err := NewTable([]Entry{{Source: "naïve theory", Target: "भोला सिद्धांत"}})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if target, ok := table.Lookup("Naïve Theory"); !ok || target != "भोला सिद्धांत" {
		t.Fatalf("unexpected lookup result: %q ok=%t", target, ok)
	}
	protected, terms := table.Protect("Naïve theory is wrong.")
	if protected != "SCI0 is wrong." || len(terms) != 1 {
		t.Fatalf("unexpected protect result: %q terms=%v", protected, terms)
	}
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	valid := []string{"SCI0", "SCI7", "SCI12", "SCI100"}
	for _, s := range valid {
		if !IsPlaceholder(s) {
			t.Fatalf("expected %q to be a placeholder", s)
		}
	}

	invalid := []string{"", "SCI", "sci0", "SCI0X", "XSCI0", "SCI 0", "SCI-1"}
	for _, s := range invalid {
		if IsPlaceholder(s) {
			t.Fatalf("expected %q not to be a placeholder", s)
		}
	}
}

func TestPlaceholderOrdinals(t *testing.T) {
	t.Parallel()

	if got := Placeholder(0); got != "SCI0" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
	if got := Placeholder(42); got != "SCI42" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
	if got := ordinalOf("SCI42"); got != 42 {
		t.Fatalf("unexpected ordinal: %d", got)
	}
	if got := ordinalOf("mangled"); got != 0 {
		t.Fatalf("expected fallback ordinal 0, got %d", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "glossary.yaml")
	content := "terms:\n  quantum: क्वांटम\n  acid: अम्ल-नया\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	entries, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 overlay entries, got %d", len(entries))
	}
	if entries[0].Source != "quantum" || entries[0].Target != "क्वांटम" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Len() != Default().Len()+1 {
		t.Fatalf("expected built-ins plus one new term, got %d", table.Len())
	}
	if target, _ := table.Lookup("acid"); target != "अम्ल-नया" {
		t.Fatalf("expected overlay to override built-in, got %q", target)
	}
	if target, _ := table.Lookup("quantum"); target != "क्वांटम" {
		t.Fatalf("expected overlay term present, got %q", target)
	}
}

func TestLoadOverlayRejectsBadShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.yaml")
	if err := os.WriteFile(missing, []byte("other: 1\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadOverlay(missing); err == nil {
		t.Fatal("expected error for missing terms mapping")
	}

	sequence := filepath.Join(dir, "sequence.yaml")
	if err := os.WriteFile(sequence, []byte("terms:\n  - quantum\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadOverlay(sequence); err == nil {
		t.Fatal("expected error for non-mapping terms")
	}
}

func TestLoadTableWithoutOverlayUsesDefault(t *testing.T) {
	t.Parallel()

	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table != Default() {
		t.Fatal("expected the default table instance")
	}
}
