// Package cache is the optional Postgres translation cache. It stores
// only final request/response text keyed by content hash; term maps are
// request-scoped and never persisted.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"masterg.app/glot/internal/config"
)

// Translation maps the translations table. One row per
// (content hash, source lang, target lang, engine).
type Translation struct {
	TranslationID  int64     `gorm:"column:translation_id;primaryKey;autoIncrement"`
	ContentHash    []byte    `gorm:"column:content_hash;type:bytea;not null;uniqueIndex:idx_translations_key"`
	SrcLang        string    `gorm:"column:src_lang;type:text;not null;uniqueIndex:idx_translations_key"`
	TgtLang        string    `gorm:"column:tgt_lang;type:text;not null;uniqueIndex:idx_translations_key"`
	Engine         string    `gorm:"column:engine;type:text;not null;uniqueIndex:idx_translations_key"`
	SourceText     string    `gorm:"column:source_text;type:text;not null"`
	TranslatedText string    `gorm:"column:translated_text;type:text;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Translation) TableName() string { return "translations" }

// Store is the cache handle. A nil *Store is a valid "no cache" value:
// lookups miss and writes are dropped.
type Store struct {
	gdb   *gorm.DB
	sqlDB *sql.DB
}

// New connects to Postgres and migrates the translations table. Returns
// (nil, nil) when the config carries no DATABASE_URL.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if !cfg.CacheEnabled() {
		return nil, nil
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(resolveGormLogLevel(cfg.LogLevel, cfg.Environment)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get cache sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping cache database: %w", err)
	}

	if err := gdb.WithContext(ctx).AutoMigrate(&Translation{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto-migrate translations table: %w", err)
	}

	return &Store{gdb: gdb, sqlDB: sqlDB}, nil
}

// Lookup returns a cached translation for the request, if present.
func (s *Store) Lookup(ctx context.Context, text, srcLang, tgtLang, engineName string) (string, bool, error) {
	if s == nil || s.gdb == nil {
		return "", false, nil
	}

	var row Translation
	err := s.gdb.WithContext(ctx).
		Where("content_hash = ? AND src_lang = ? AND tgt_lang = ? AND engine = ?",
			HashText(text), srcLang, tgtLang, engineName).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup cached translation: %w", err)
	}
	return row.TranslatedText, true, nil
}

// Write upserts one cached translation.
func (s *Store) Write(ctx context.Context, text, srcLang, tgtLang, engineName, translated string) error {
	if s == nil || s.gdb == nil {
		return nil
	}

	row := Translation{
		ContentHash:    HashText(text),
		SrcLang:        srcLang,
		TgtLang:        tgtLang,
		Engine:         engineName,
		SourceText:     text,
		TranslatedText: translated,
	}

	err := s.gdb.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "content_hash"},
				{Name: "src_lang"},
				{Name: "tgt_lang"},
				{Name: "engine"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"source_text", "translated_text", "created_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("store cached translation: %w", err)
	}
	return nil
}

// Ping verifies cache database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("cache store is not initialized")
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// HashText is the cache key digest of the raw request text.
func HashText(text string) []byte {
	sum := sha256.Sum256([]byte(text))
	return sum[:]
}

func resolveGormLogLevel(appLogLevel, environment string) logger.LogLevel {
	level := strings.ToLower(strings.TrimSpace(appLogLevel))
	switch level {
	case "trace", "debug":
		return logger.Info
	case "warn", "warning", "info", "":
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		if strings.EqualFold(strings.TrimSpace(environment), "local") {
			return logger.Warn
		}
		return logger.Error
	}
}
