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
	"masterg.app/glot/internal/httpapi"
)

// runHTTP starts the HTTP facade for callers that cannot attach to the
// stdio protocol.
func runHTTP(args []string) int {
	fs := flag.NewFlagSet("http", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	addr := fs.String("addr", "", "Listen address (default from GLOT_HTTP_ADDR)")
	engineName := fs.String("engine", "", "Inference engine to use (default from GLOT_ENGINE)")
	readTimeout := fs.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", 5*time.Minute, "HTTP write timeout (streaming responses stay open)")

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

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = cfg.HTTPAddr
	}

	server := httpapi.NewServer(svc.pipeline, svc.engine, svc.table, logger, httpapi.Options{
		Addr:           listenAddr,
		ReadTimeout:    *readTimeout,
		WriteTimeout:   *writeTimeout,
		AllowedOrigins: cfg.CORSAllowedOriginsList(),
	})

	if err := server.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("http facade failed")
		return 1
	}
	return 0
}
