package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"masterg.app/glot/internal/cli"
	"masterg.app/glot/internal/pipeline"
)

type onceResponse struct {
	Success    bool   `json:"success"`
	Translated string `json:"translated,omitempty"`
	SrcLang    string `json:"src_lang,omitempty"`
	TgtLang    string `json:"tgt_lang,omitempty"`
	Error      string `json:"error,omitempty"`
}

// runOnce reads one JSON request from stdin, writes one JSON response to
// stdout, and exits. A translation failure is still a protocol-level
// response; only I/O and startup failures exit non-zero.
func runOnce(args []string) int {
	fs := flag.NewFlagSet("once", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	engineName := fs.String("engine", "", "Inference engine to use (default from GLOT_ENGINE)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, logger, code := loadCore(envLoader)
	if code != 0 {
		return code
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", err)
		return 1
	}
	if strings.TrimSpace(string(raw)) == "" {
		fmt.Fprintln(os.Stderr, "Expected a JSON request on stdin")
		return 1
	}

	var req struct {
		Text    string `json:"text"`
		SrcLang string `json:"src_lang"`
		TgtLang string `json:"tgt_lang"`
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return writeOnce(onceResponse{Success: false, Error: fmt.Sprintf("Invalid JSON: %v", err)})
	}

	ctx := context.Background()
	svc, err := buildServices(ctx, cfg, logger, *engineName)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		return 1
	}
	defer svc.Close()

	result, err := svc.pipeline.Translate(ctx, pipeline.Request{
		Text:    req.Text,
		SrcLang: req.SrcLang,
		TgtLang: req.TgtLang,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("request failed")
		return writeOnce(onceResponse{Success: false, Error: err.Error()})
	}

	return writeOnce(onceResponse{
		Success:    true,
		Translated: result.Translated,
		SrcLang:    result.SrcLang,
		TgtLang:    result.TgtLang,
	})
}

func writeOnce(resp onceResponse) int {
	payload, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode response: %v\n", err)
		return 1
	}
	fmt.Println(string(payload))
	return 0
}
