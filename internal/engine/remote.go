package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"masterg.app/glot/internal/language"
)

// DefaultEndpoint points to a local inference sidecar.
const DefaultEndpoint = "http://127.0.0.1:8763"

// Generation parameters are fixed per model family; they mirror what the
// sidecars were tuned with and are not request-configurable.
type generationParams struct {
	MaxLength         int
	NumBeams          int
	RepetitionPenalty float64
	LengthPenalty     float64
	MaxUnitChars      int
}

var enginePresets = map[string]generationParams{
	"nllb": {
		MaxLength:         512,
		NumBeams:          4,
		RepetitionPenalty: 1.2,
		LengthPenalty:     0.9,
		MaxUnitChars:      1000,
	},
	"indictrans2": {
		MaxLength:         180,
		NumBeams:          2,
		RepetitionPenalty: 1.3,
		LengthPenalty:     0.8,
		MaxUnitChars:      400,
	},
}

// PresetNames returns the known engine preset names, for error messages
// and registry wiring.
func PresetNames() []string {
	return []string{"indictrans2", "nllb"}
}

// Remote is an Engine backed by an inference sidecar HTTP API.
type Remote struct {
	name         string
	translateURL string
	healthURL    string
	params       generationParams
	client       *http.Client

	warmOnce sync.Once
	warmErr  error
}

// NewRemote builds a sidecar client for a known engine preset. The
// endpoint is the sidecar base URL; empty means DefaultEndpoint.
func NewRemote(name, endpoint string, timeout time.Duration) (*Remote, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	params, ok := enginePresets[normalized]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}

	base, err := normalizeEndpoint(endpoint)
	if err != nil {
		return nil, fmt.Errorf("engine %s: %w", normalized, err)
	}

	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &Remote{
		name:         normalized,
		translateURL: base + "/translate",
		healthURL:    base + "/health",
		params:       params,
		client:       &http.Client{Timeout: timeout},
	}, nil
}

func (r *Remote) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

func (r *Remote) Languages() []string {
	return language.SupportedTags()
}

func (r *Remote) MaxUnitChars() int {
	if r == nil {
		return 0
	}
	return r.params.MaxUnitChars
}

type translateWire struct {
	Text              string  `json:"text"`
	SrcLang           string  `json:"src_lang"`
	TgtLang           string  `json:"tgt_lang"`
	MaxLength         int     `json:"max_length"`
	NumBeams          int     `json:"num_beams"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	LengthPenalty     float64 `json:"length_penalty"`
}

type translateWireResponse struct {
	Translated string `json:"translated"`
	Error      string `json:"error"`
}

// Translate sends one unit to the sidecar. The first call warms the
// sidecar up with a guarded ping; a failed warmup is reported on every
// subsequent call rather than retried.
func (r *Remote) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if r == nil {
		return nil, fmt.Errorf("engine is nil")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	srcLang := language.Normalize(req.SrcLang)
	tgtLang := language.Normalize(req.TgtLang)
	if srcLang == "" || tgtLang == "" {
		return nil, fmt.Errorf("source and target language tags are required")
	}

	if err := r.warm(ctx); err != nil {
		return nil, fmt.Errorf("engine %s warmup: %w", r.name, err)
	}

	body, err := json.Marshal(translateWire{
		Text:              text,
		SrcLang:           srcLang,
		TgtLang:           tgtLang,
		MaxLength:         r.params.MaxLength,
		NumBeams:          r.params.NumBeams,
		RepetitionPenalty: r.params.RepetitionPenalty,
		LengthPenalty:     r.params.LengthPenalty,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal translate request: %w", err)
	}

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.translateURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build translate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send translate request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translate response: %w", err)
	}

	var parsed translateWireResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if unmarshalErr := json.Unmarshal(respBody, &parsed); unmarshalErr == nil {
			if msg := strings.TrimSpace(parsed.Error); msg != "" {
				return nil, fmt.Errorf("engine %s status %d: %s", r.name, resp.StatusCode, msg)
			}
		}
		return nil, fmt.Errorf("engine %s status %d: %s", r.name, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode translate response: %w", err)
	}

	translated := strings.TrimSpace(parsed.Translated)
	if translated == "" {
		return nil, fmt.Errorf("engine %s returned an empty translation", r.name)
	}

	return &TranslateResponse{
		Text:       translated,
		SrcLang:    srcLang,
		TgtLang:    tgtLang,
		EngineName: r.name,
		LatencyMs:  time.Since(started).Milliseconds(),
	}, nil
}

// Ping checks sidecar health without warming generation state.
func (r *Remote) Ping(ctx context.Context) error {
	if r == nil {
		return fmt.Errorf("engine is nil")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.healthURL, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("engine %s health: %w", r.name, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("engine %s health status %d", r.name, resp.StatusCode)
	}
	return nil
}

// warm runs the one-time sidecar ping. Concurrent first use shares a
// single attempt.
func (r *Remote) warm(ctx context.Context) error {
	r.warmOnce.Do(func() {
		r.warmErr = r.Ping(ctx)
	})
	return r.warmErr
}

func normalizeEndpoint(raw string) (string, error) {
	endpoint := strings.TrimSpace(raw)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("endpoint %q has no host", raw)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return parsed.String(), nil
}
