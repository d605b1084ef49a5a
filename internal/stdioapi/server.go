// Package stdioapi serves the line-delimited JSON protocol the MasterG
// parent process speaks: one request object per stdin line, one or more
// response objects per stdout line. Logging never touches stdout.
package stdioapi

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"masterg.app/glot/internal/pipeline"
	requestschema "masterg.app/glot/schema"
)

// Translator is the pipeline surface the server drives.
type Translator interface {
	Translate(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
	TranslateStream(ctx context.Context, req pipeline.Request, emit func(pipeline.Chunk) error) (pipeline.Result, error)
}

type Options struct {
	// MaxLineBytes caps one request line; longer lines fail the scan.
	MaxLineBytes int
	// Strict validates every request line against the wire schema
	// before dispatch.
	Strict bool
}

type Server struct {
	in     io.Reader
	out    *bufio.Writer
	trans  Translator
	logger zerolog.Logger
	opts   Options
}

func New(in io.Reader, out io.Writer, trans Translator, logger zerolog.Logger, opts Options) *Server {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = 1 << 20
	}
	return &Server{
		in:     in,
		out:    bufio.NewWriter(out),
		trans:  trans,
		logger: logger,
		opts:   opts,
	}
}

type wireRequest struct {
	Text    string `json:"text"`
	SrcLang string `json:"src_lang"`
	TgtLang string `json:"tgt_lang"`
	Stream  bool   `json:"stream"`
}

type wireResponse struct {
	Success    bool   `json:"success"`
	Type       string `json:"type,omitempty"`
	Index      *int   `json:"index,omitempty"`
	Total      *int   `json:"total,omitempty"`
	Translated string `json:"translated,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Run reads requests until EOF or context cancellation. Malformed lines
// produce an error response and the loop continues; only I/O failures
// end the loop with an error.
func (s *Server) Run(ctx context.Context) error {
	if s == nil || s.trans == nil {
		return fmt.Errorf("stdio server is not initialized")
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 64*1024), s.opts.MaxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := s.handleLine(ctx, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request line: %w", err)
	}
	s.logger.Info().Msg("stdin closed, stopping request loop")
	return nil
}

func (s *Server) handleLine(ctx context.Context, line string) error {
	var req wireRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return s.write(wireResponse{Success: false, Error: fmt.Sprintf("Invalid JSON: %v", err)})
	}

	if s.opts.Strict {
		if _, err := requestschema.ValidateTranslateRequest(json.RawMessage(line)); err != nil {
			return s.write(wireResponse{Success: false, Error: fmt.Sprintf("Invalid request: %v", err)})
		}
	}

	if strings.TrimSpace(req.Text) == "" {
		return s.write(wireResponse{Success: false, Error: "Missing or empty 'text' field"})
	}

	pipelineReq := pipeline.Request{
		Text:    req.Text,
		SrcLang: req.SrcLang,
		TgtLang: req.TgtLang,
	}

	if req.Stream {
		return s.handleStream(ctx, pipelineReq)
	}

	result, err := s.trans.Translate(ctx, pipelineReq)
	if err != nil {
		s.logger.Warn().Err(err).Msg("request failed")
		return s.write(wireResponse{Success: false, Error: err.Error()})
	}

	s.logger.Debug().
		Int("units", result.Units).
		Int("failed_units", result.FailedUnits).
		Bool("cache_hit", result.CacheHit).
		Msg("request served")
	return s.write(wireResponse{Success: true, Translated: result.Translated})
}

func (s *Server) handleStream(ctx context.Context, req pipeline.Request) error {
	result, err := s.trans.TranslateStream(ctx, req, func(chunk pipeline.Chunk) error {
		index := chunk.Index
		total := chunk.Total
		return s.write(wireResponse{
			Success:    true,
			Type:       "chunk",
			Index:      &index,
			Total:      &total,
			Translated: chunk.Translated,
		})
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("stream request failed")
		return s.write(wireResponse{Success: false, Type: "error", Error: err.Error()})
	}

	total := result.Units
	return s.write(wireResponse{
		Success:    true,
		Type:       "complete",
		Total:      &total,
		Translated: result.Translated,
	})
}

// write emits one response line and flushes it immediately so the parent
// process never blocks on buffering.
func (s *Server) write(resp wireResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	if _, err := s.out.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}
	return nil
}
