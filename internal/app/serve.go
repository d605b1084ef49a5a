package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masterg.app/glot/internal/cli"
	"masterg.app/glot/internal/stdioapi"
)

// runServe attaches the line-delimited JSON protocol to stdin/stdout.
// This is the mode the MasterG parent process launches.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	engineName := fs.String("engine", "", "Inference engine to use (default from GLOT_ENGINE)")
	strict := fs.Bool("strict", false, "Validate every request line against the wire schema")

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(ctx, cfg, logger, *engineName)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		return 1
	}
	defer svc.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.engine.Ping(pingCtx); err != nil {
		logger.Error().Err(err).Str("engine", svc.engine.Name()).Msg("inference sidecar unreachable")
		fmt.Fprintf(os.Stderr, "Inference sidecar unreachable: %v\n", err)
		return 1
	}

	server := stdioapi.New(os.Stdin, os.Stdout, svc.pipeline, logger, stdioapi.Options{
		MaxLineBytes: cfg.MaxLineBytes,
		Strict:       *strict || cfg.StrictRequests,
	})

	logger.Info().
		Str("engine", svc.engine.Name()).
		Bool("cache", svc.cache != nil).
		Int("glossary_terms", svc.table.Len()).
		Msg("glot stdio server ready")

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("stdio server failed")
		return 1
	}
	return 0
}
