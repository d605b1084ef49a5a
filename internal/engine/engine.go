// Package engine is the boundary to the inference sidecar processes that
// own the translation models. glot never loads a model itself; an Engine
// is a typed client for one sidecar.
package engine

import "context"

// Engine translates one unit of text between languages.
type Engine interface {
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error)
	Name() string
	Languages() []string
	// MaxUnitChars is the longest unit the engine accepts in one call;
	// longer units must be chunked by the caller.
	MaxUnitChars() int
	Ping(ctx context.Context) error
}

// TranslateRequest describes one unit translation.
type TranslateRequest struct {
	Text    string
	SrcLang string // FLORES tag (for example: "eng_Latn")
	TgtLang string
}

// TranslateResponse contains translated text and engine metadata.
type TranslateResponse struct {
	Text       string
	SrcLang    string
	TgtLang    string
	EngineName string
	LatencyMs  int64
}
