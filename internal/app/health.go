package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"masterg.app/glot/internal/cache"
	"masterg.app/glot/internal/cli"
	"masterg.app/glot/internal/engine"
)

// runHealth pings the inference sidecar and, when a cache database is
// configured, the database too.
func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	engineName := fs.String("engine", "", "Inference engine to ping (default from GLOT_ENGINE)")
	timeout := fs.Duration("timeout", 5*time.Second, "Ping timeout per target")

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

	registry, err := engine.NewRegistryFromEndpoint(cfg.Engine, cfg.EngineEndpoint, cfg.EngineTimeout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		return 1
	}
	eng, err := registry.Engine(*engineName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		return 1
	}

	engineCtx, cancelEngine := context.WithTimeout(context.Background(), *timeout)
	defer cancelEngine()
	if err := eng.Ping(engineCtx); err != nil {
		logger.Error().Err(err).Str("engine", eng.Name()).Msg("health check failed")
		fmt.Fprintf(os.Stderr, "Health check failed: engine %s: %v\n", eng.Name(), err)
		return 1
	}
	fmt.Printf("ok: engine %s reachable\n", eng.Name())

	if cfg.CacheEnabled() {
		cacheCtx, cancelCache := context.WithTimeout(context.Background(), *timeout)
		defer cancelCache()

		store, err := cache.New(cacheCtx, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("health check failed")
			fmt.Fprintf(os.Stderr, "Health check failed: cache database: %v\n", err)
			return 1
		}
		defer store.Close()

		if err := store.Ping(cacheCtx); err != nil {
			logger.Error().Err(err).Msg("health check failed")
			fmt.Fprintf(os.Stderr, "Health check failed: cache database: %v\n", err)
			return 1
		}
		fmt.Println("ok: cache database ping successful")
	}

	logger.Info().Dur("timeout", *timeout).Msg("health check passed")
	return 0
}
