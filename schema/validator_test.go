package requestschema

import (
	"encoding/json"
	"testing"
)

func TestValidateTranslateRequest(t *testing.T) {
	t.Parallel()

	req, err := ValidateTranslateRequest(json.RawMessage(
		`{"text": "Photosynthesis produces oxygen.", "src_lang": "eng_Latn", "tgt_lang": "hin_Deva", "stream": true}`,
	))
	if err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if req.Text != "Photosynthesis produces oxygen." {
		t.Fatalf("unexpected text: %q", req.Text)
	}
	if !req.Stream {
		t.Fatal("stream flag lost in decoding")
	}
}

func TestValidateTranslateRequestDefaultsAndAuto(t *testing.T) {
	t.Parallel()

	if _, err := ValidateTranslateRequest(json.RawMessage(`{"text": "hi"}`)); err != nil {
		t.Fatalf("omitted language tags must be valid, got %v", err)
	}
	if _, err := ValidateTranslateRequest(json.RawMessage(`{"text": "hi", "src_lang": "auto"}`)); err != nil {
		t.Fatalf("src_lang auto must be valid, got %v", err)
	}
}

func TestValidateTranslateRequestRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{name: "empty payload", payload: ``},
		{name: "malformed JSON", payload: `{"text": `},
		{name: "trailing content", payload: `{"text": "hi"} {"text": "again"}`},
		{name: "missing text", payload: `{"src_lang": "eng_Latn"}`},
		{name: "blank text", payload: `{"text": "   "}`},
		{name: "unknown property", payload: `{"text": "hi", "mode": "fast"}`},
		{name: "unknown language tag", payload: `{"text": "hi", "tgt_lang": "xx_Latn"}`},
		{name: "non-string text", payload: `{"text": 42}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ValidateTranslateRequest(json.RawMessage(tc.payload)); err == nil {
				t.Fatalf("expected %s to be rejected", tc.name)
			}
		})
	}
}
