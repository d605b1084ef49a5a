package cache

import (
	"bytes"
	"context"
	"testing"
)

func TestHashTextDeterministic(t *testing.T) {
	t.Parallel()

	a := HashText("Photosynthesis produces oxygen.")
	b := HashText("Photosynthesis produces oxygen.")
	if !bytes.Equal(a, b) {
		t.Fatal("hash must be deterministic for identical text")
	}
	if len(a) != 32 {
		t.Fatalf("unexpected digest length: %d", len(a))
	}

	c := HashText("Photosynthesis produces oxygen")
	if bytes.Equal(a, c) {
		t.Fatal("different text must not collide on the trivial case")
	}
}

func TestNilStoreIsNoCache(t *testing.T) {
	t.Parallel()

	var store *Store
	translated, hit, err := store.Lookup(context.Background(), "text", "eng_Latn", "hin_Deva", "nllb")
	if err != nil || hit || translated != "" {
		t.Fatalf("nil store lookup must miss silently, got %q hit=%t err=%v", translated, hit, err)
	}

	if err := store.Write(context.Background(), "text", "eng_Latn", "hin_Deva", "nllb", "अनुवाद"); err != nil {
		t.Fatalf("nil store write must be a no-op, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("nil store close must be a no-op, got %v", err)
	}
}
