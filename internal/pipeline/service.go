// Package pipeline orchestrates one translation request: markdown strip,
// glossary protection, segmentation, per-unit engine calls, and
// restoration of the protected terms.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"masterg.app/glot/internal/engine"
	"masterg.app/glot/internal/glossary"
	"masterg.app/glot/internal/language"
	"masterg.app/glot/internal/markdown"
	"masterg.app/glot/internal/segment"
)

var (
	ErrEmptyText      = errors.New("text is required")
	ErrNoUnits        = errors.New("no translatable units in input")
	ErrAllUnitsFailed = errors.New("all units failed to translate")
)

// Cache looks up and stores final request/response text. Implementations
// must tolerate being skipped; failures never fail a request.
type Cache interface {
	Lookup(ctx context.Context, text, srcLang, tgtLang, engineName string) (string, bool, error)
	Write(ctx context.Context, text, srcLang, tgtLang, engineName, translated string) error
}

// DetectFunc guesses a FLORES tag for text, or returns "".
type DetectFunc func(text string) string

// Options wires a Service. Engine is required; everything else has a
// usable default.
type Options struct {
	Table    *glossary.Table
	Strategy glossary.Strategy
	Engine   engine.Engine
	Cache    Cache
	Detect   DetectFunc
	Logger   zerolog.Logger

	DefaultSrcLang string
	DefaultTgtLang string
}

// Service runs the term-protection translation pipeline. Safe for
// concurrent use: all fields are read-only after New.
type Service struct {
	table          *glossary.Table
	strategy       glossary.Strategy
	engine         engine.Engine
	cache          Cache
	detect         DetectFunc
	logger         zerolog.Logger
	defaultSrcLang string
	defaultTgtLang string
}

func New(opts Options) (*Service, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}

	table := opts.Table
	if table == nil {
		table = glossary.Default()
	}
	strategy := opts.Strategy
	if strategy == nil {
		strategy = glossary.Conservative{}
	}

	defaultSrc := language.Normalize(opts.DefaultSrcLang)
	if defaultSrc == "" {
		defaultSrc = "eng_Latn"
	}
	defaultTgt := language.Normalize(opts.DefaultTgtLang)
	if defaultTgt == "" {
		defaultTgt = "hin_Deva"
	}

	return &Service{
		table:          table,
		strategy:       strategy,
		engine:         opts.Engine,
		cache:          opts.Cache,
		detect:         opts.Detect,
		logger:         opts.Logger,
		defaultSrcLang: defaultSrc,
		defaultTgtLang: defaultTgt,
	}, nil
}

// Request is one translation request after protocol decoding.
type Request struct {
	Text    string
	SrcLang string
	TgtLang string
}

// Result is the outcome of one request. FailedUnits counts units that
// kept their original text after an engine failure; partial failure is
// still overall success.
type Result struct {
	Translated  string
	SrcLang     string
	TgtLang     string
	Units       int
	FailedUnits int
	CacheHit    bool
}

// Chunk is one restored unit emitted during streaming.
type Chunk struct {
	Index      int
	Total      int
	Translated string
}

// Translate runs the full pipeline and returns the joined result.
func (s *Service) Translate(ctx context.Context, req Request) (Result, error) {
	return s.run(ctx, req, nil)
}

// TranslateStream runs the same pipeline but emits each restored unit as
// soon as it is ready. The returned Result carries the joined text for
// the completion record.
func (s *Service) TranslateStream(ctx context.Context, req Request, emit func(Chunk) error) (Result, error) {
	if emit == nil {
		return Result{}, fmt.Errorf("emit callback is required")
	}
	return s.run(ctx, req, emit)
}

func (s *Service) run(ctx context.Context, req Request, emit func(Chunk) error) (Result, error) {
	if s == nil || s.engine == nil {
		return Result{}, fmt.Errorf("pipeline service is not initialized")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	srcLang, tgtLang := s.resolveLanguages(req)
	result := Result{SrcLang: srcLang, TgtLang: tgtLang}

	if s.cache != nil {
		translated, hit, err := s.cache.Lookup(ctx, text, srcLang, tgtLang, s.engine.Name())
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("cache lookup failed")
		case hit:
			result.Translated = translated
			result.Units = 1
			result.CacheHit = true
			if emit != nil {
				if emitErr := emit(Chunk{Index: 0, Total: 1, Translated: translated}); emitErr != nil {
					return result, fmt.Errorf("emit cached chunk: %w", emitErr)
				}
			}
			return result, nil
		}
	}

	protected, terms := s.table.Protect(markdown.Strip(text))
	units := segment.Units(protected)
	if len(units) == 0 {
		return result, ErrNoUnits
	}
	result.Units = len(units)

	restored := make([]string, 0, len(units))
	failed := 0
	for i, unit := range units {
		out, ok := s.translateUnit(ctx, unit, srcLang, tgtLang)
		if !ok {
			failed++
		}

		final := strings.TrimSpace(s.strategy.Restore(out, terms))
		restored = append(restored, final)

		if emit != nil {
			if err := emit(Chunk{Index: i, Total: len(units), Translated: final}); err != nil {
				return result, fmt.Errorf("emit chunk %d: %w", i, err)
			}
		}
	}

	result.FailedUnits = failed
	if failed == len(units) {
		return result, ErrAllUnitsFailed
	}
	result.Translated = strings.Join(restored, " ")

	if s.cache != nil {
		if err := s.cache.Write(ctx, text, srcLang, tgtLang, s.engine.Name(), result.Translated); err != nil {
			s.logger.Warn().Err(err).Msg("cache write failed")
		}
	}

	return result, nil
}

// translateUnit returns the translated unit, or the original unit and
// false when the engine failed. A unit that is exactly one placeholder
// token never reaches the engine: a lone synthetic token carries no
// translatable content and risks hallucination.
func (s *Service) translateUnit(ctx context.Context, unit, srcLang, tgtLang string) (string, bool) {
	if glossary.IsPlaceholder(unit) {
		return unit, true
	}

	pieces := []string{unit}
	if maxChars := s.engine.MaxUnitChars(); maxChars > 0 && len(unit) > maxChars {
		pieces = segment.Chunk(unit, maxChars)
	}

	outs := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		resp, err := s.engine.Translate(ctx, engine.TranslateRequest{
			Text:    piece,
			SrcLang: srcLang,
			TgtLang: tgtLang,
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("engine", s.engine.Name()).Msg("unit translation failed, keeping original")
			return unit, false
		}
		out := strings.TrimSpace(resp.Text)
		if out == "" {
			s.logger.Warn().Str("engine", s.engine.Name()).Msg("unit translation empty, keeping original")
			return unit, false
		}
		outs = append(outs, out)
	}

	return strings.Join(outs, " "), true
}

func (s *Service) resolveLanguages(req Request) (string, string) {
	srcLang := language.Normalize(req.SrcLang)
	if srcLang == "" {
		raw := strings.ToLower(strings.TrimSpace(req.SrcLang))
		if (raw == "" || raw == "auto") && s.detect != nil {
			srcLang = s.detect(req.Text)
			if srcLang != "" {
				s.logger.Debug().
					Str("src_lang", srcLang).
					Str("language", language.Label(srcLang)).
					Msg("source language detected")
			}
		}
	}
	if srcLang == "" {
		srcLang = s.defaultSrcLang
	}

	tgtLang := language.Normalize(req.TgtLang)
	if tgtLang == "" {
		tgtLang = s.defaultTgtLang
	}

	return srcLang, tgtLang
}
