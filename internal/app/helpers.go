package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"masterg.app/glot/internal/cache"
	"masterg.app/glot/internal/cli"
	"masterg.app/glot/internal/config"
	"masterg.app/glot/internal/engine"
	"masterg.app/glot/internal/glossary"
	"masterg.app/glot/internal/langdetect"
	"masterg.app/glot/internal/logging"
	"masterg.app/glot/internal/pipeline"
)

// loadCore runs the common bootstrap: env file, config, logger. The env
// file is optional; everything can come from the real environment.
func loadCore(envLoader *cli.EnvLoader) (*config.Config, zerolog.Logger, int) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, zerolog.Logger{}, 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return nil, zerolog.Logger{}, 1
	}

	return cfg, logger, 0
}

// services holds everything one command needs to run the pipeline.
type services struct {
	table    *glossary.Table
	engine   engine.Engine
	cache    *cache.Store
	pipeline *pipeline.Service
}

func (s *services) Close() {
	if s == nil || s.cache == nil {
		return
	}
	_ = s.cache.Close()
}

// buildServices wires the glossary, engine, optional cache, and the
// pipeline. engineOverride comes from the -engine flag; empty uses the
// configured default. A failing cache degrades to "no cache" with a
// warning rather than failing startup.
func buildServices(ctx context.Context, cfg *config.Config, logger zerolog.Logger, engineOverride string) (*services, error) {
	table, err := glossary.LoadTable(cfg.GlossaryPath)
	if err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}

	strategy, err := glossary.NewStrategy(cfg.RestoreStrategy)
	if err != nil {
		return nil, err
	}

	registry, err := engine.NewRegistryFromEndpoint(cfg.Engine, cfg.EngineEndpoint, cfg.EngineTimeout())
	if err != nil {
		return nil, err
	}
	eng, err := registry.Engine(engineOverride)
	if err != nil {
		return nil, err
	}

	store, err := cache.New(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("translation cache unavailable, continuing without it")
		store = nil
	}

	var detect pipeline.DetectFunc
	if cfg.DetectSource {
		detect = langdetect.DetectTag
	}

	// A nil *cache.Store must stay out of the interface value so the
	// pipeline skips cache calls entirely.
	var pipelineCache pipeline.Cache
	if store != nil {
		pipelineCache = store
	}

	service, err := pipeline.New(pipeline.Options{
		Table:          table,
		Strategy:       strategy,
		Engine:         eng,
		Cache:          pipelineCache,
		Detect:         detect,
		Logger:         logger,
		DefaultSrcLang: cfg.DefaultSrcLang,
		DefaultTgtLang: cfg.DefaultTgtLang,
	})
	if err != nil {
		return nil, err
	}

	return &services{
		table:    table,
		engine:   eng,
		cache:    store,
		pipeline: service,
	}, nil
}
