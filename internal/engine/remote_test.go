package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newSidecar(t *testing.T, translate http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/translate", translate)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRemoteTranslate(t *testing.T) {
	t.Parallel()

	var got translateWire
	sidecar := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode sidecar request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"translated": "नमस्ते"})
	})

	remote, err := NewRemote("indictrans2", sidecar.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}

	resp, err := remote.Translate(context.Background(), TranslateRequest{
		Text:    "Hello",
		SrcLang: "eng_Latn",
		TgtLang: "hin_Deva",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if resp.Text != "नमस्ते" {
		t.Fatalf("unexpected translation: %q", resp.Text)
	}
	if resp.EngineName != "indictrans2" {
		t.Fatalf("unexpected engine name: %q", resp.EngineName)
	}

	// The indictrans2 preset must ride along on every request.
	if got.MaxLength != 180 || got.NumBeams != 2 {
		t.Fatalf("unexpected generation params: %+v", got)
	}
	if got.SrcLang != "eng_Latn" || got.TgtLang != "hin_Deva" {
		t.Fatalf("unexpected language tags: %+v", got)
	}
}

func TestRemoteTranslateEmptyOutputIsError(t *testing.T) {
	t.Parallel()

	sidecar := newSidecar(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"translated": "  "})
	})

	remote, err := NewRemote("nllb", sidecar.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}

	if _, err := remote.Translate(context.Background(), TranslateRequest{
		Text:    "Hello",
		SrcLang: "eng_Latn",
		TgtLang: "hin_Deva",
	}); err == nil {
		t.Fatal("expected error for empty translation")
	}
}

func TestRemoteTranslateSurfacesSidecarError(t *testing.T) {
	t.Parallel()

	sidecar := newSidecar(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model not loaded"})
	})

	remote, err := NewRemote("nllb", sidecar.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}

	_, err = remote.Translate(context.Background(), TranslateRequest{
		Text:    "Hello",
		SrcLang: "eng_Latn",
		TgtLang: "hin_Deva",
	})
	if err == nil {
		t.Fatal("expected error from sidecar failure")
	}
}

func TestRemoteUnknownPreset(t *testing.T) {
	t.Parallel()

	if _, err := NewRemote("marian", "", time.Second); err == nil {
		t.Fatal("expected error for unknown engine preset")
	}
}

func TestRemotePresetLimits(t *testing.T) {
	t.Parallel()

	nllb, err := NewRemote("nllb", "", time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}
	if nllb.MaxUnitChars() != 1000 {
		t.Fatalf("unexpected nllb unit cap: %d", nllb.MaxUnitChars())
	}

	indic, err := NewRemote("indictrans2", "", time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}
	if indic.MaxUnitChars() != 400 {
		t.Fatalf("unexpected indictrans2 unit cap: %d", indic.MaxUnitChars())
	}
}
