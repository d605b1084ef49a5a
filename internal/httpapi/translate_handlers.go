package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"masterg.app/glot/internal/globaltime"
	"masterg.app/glot/internal/language"
	"masterg.app/glot/internal/pipeline"
)

type translateRequest struct {
	Text    string `json:"text"`
	SrcLang string `json:"src_lang"`
	TgtLang string `json:"tgt_lang"`
	Stream  bool   `json:"stream"`
}

type streamRecord struct {
	Success    bool   `json:"success"`
	Type       string `json:"type"`
	Index      *int   `json:"index,omitempty"`
	Total      *int   `json:"total,omitempty"`
	Translated string `json:"translated,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	engineName := ""
	engineStatus := "unconfigured"
	if s.engine != nil {
		engineName = s.engine.Name()
		pingCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := s.engine.Ping(pingCtx); err != nil {
			engineStatus = "unreachable"
		} else {
			engineStatus = "ok"
		}
	}

	return success(c, map[string]any{
		"service":        "glot",
		"engine":         engineName,
		"engine_status":  engineStatus,
		"uptime_seconds": int64(globaltime.UTC().Sub(s.startedAt).Seconds()),
		"time":           globaltime.UTC(),
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"items": language.Options(),
	})
}

func (s *Server) handleGlossary(c echo.Context) error {
	entries := s.table.Entries()
	return success(c, map[string]any{
		"count": len(entries),
		"items": entries,
	})
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return failValidation(c, map[string]string{"text": "is required"})
	}

	pipelineReq := pipeline.Request{
		Text:    req.Text,
		SrcLang: req.SrcLang,
		TgtLang: req.TgtLang,
	}

	if req.Stream {
		return s.streamTranslate(c, pipelineReq)
	}

	result, err := s.trans.Translate(c.Request().Context(), pipelineReq)
	if err != nil {
		return s.translateError(c, err)
	}

	return success(c, map[string]any{
		"translated":   result.Translated,
		"src_lang":     result.SrcLang,
		"tgt_lang":     result.TgtLang,
		"units":        result.Units,
		"failed_units": result.FailedUnits,
		"cache_hit":    result.CacheHit,
	})
}

// streamTranslate writes newline-delimited JSON records, one per restored
// unit, flushed as soon as each is ready.
func (s *Server) streamTranslate(c echo.Context, req pipeline.Request) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "application/x-ndjson")
	resp.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(resp)
	writeRecord := func(record streamRecord) error {
		if err := encoder.Encode(record); err != nil {
			return err
		}
		resp.Flush()
		return nil
	}

	result, err := s.trans.TranslateStream(c.Request().Context(), req, func(chunk pipeline.Chunk) error {
		index := chunk.Index
		total := chunk.Total
		return writeRecord(streamRecord{
			Success:    true,
			Type:       "chunk",
			Index:      &index,
			Total:      &total,
			Translated: chunk.Translated,
		})
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("stream translate failed")
		return writeRecord(streamRecord{Success: false, Type: "error", Error: err.Error()})
	}

	total := result.Units
	return writeRecord(streamRecord{
		Success:    true,
		Type:       "complete",
		Total:      &total,
		Translated: result.Translated,
	})
}

func (s *Server) translateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pipeline.ErrEmptyText):
		return failValidation(c, map[string]string{"text": "is required"})
	case errors.Is(err, pipeline.ErrNoUnits):
		return fail(c, http.StatusUnprocessableEntity, "No translatable units in input", nil)
	case errors.Is(err, pipeline.ErrAllUnitsFailed):
		return fail(c, http.StatusBadGateway, "Translation engine failed for every unit", nil)
	default:
		s.logger.Error().Err(err).Msg("translate request failed")
		return internalError(c, "Translation failed")
	}
}
