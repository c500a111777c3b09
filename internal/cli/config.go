package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/mcoot/game2048/internal/factory"
	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/services/grid"
	redisstorage "github.com/mcoot/game2048/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Output   string
	Verbose  bool
	LogFile  string
	Storage  string
	RedisURL string

	// HistoryTTL expires games stored in redis (0 keeps them forever)
	HistoryTTL time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   getEnvOrDefault("GAME2048_OUTPUT", "text"),
		Verbose:  false,
		LogFile:  os.Getenv("GAME2048_LOG_FILE"),
		Storage:  getEnvOrDefault("GAME2048_STORAGE", factory.StorageTypeMemory),
		RedisURL: getEnvOrDefault("GAME2048_REDIS_URL", redisstorage.DefaultConfig().URL),

		HistoryTTL: redisstorage.DefaultConfig().GameTTL,
	}
}

// Validate checks the flag values that have a fixed set of choices
func (c *Config) Validate() error {
	if !slices.Contains([]string{"text", "json"}, c.Output) {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if !slices.Contains([]string{factory.StorageTypeMemory, factory.StorageTypeRedis}, c.Storage) {
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}
	return nil
}

// NewLogger builds the JSON logger. Without a log file output is discarded,
// since the game owns the terminal.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}

	if c.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// FactoryConfig translates the CLI settings for the application factory
func (c *Config) FactoryConfig(logger *slog.Logger, seed *uint64) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		Seed:        seed,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.GameTTL = c.HistoryTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// GameOptions holds the flags shared by play and autoplay
type GameOptions struct {
	Height      int
	Width       int
	Win         int
	FourPercent int
	Seed        uint64
	OnEnd       string
}

// DefaultGameOptions returns the classic 4x4 game to 2048
func DefaultGameOptions() GameOptions {
	def := grid.DefaultConfig()
	return GameOptions{
		Height:      def.Height,
		Width:       def.Width,
		Win:         def.WinValue,
		FourPercent: def.FourPercent,
		OnEnd:       string(model.EndPolicyRestart),
	}
}

// GridConfig returns the engine configuration for these options
func (o GameOptions) GridConfig() grid.Config {
	return grid.Config{
		Height:      o.Height,
		Width:       o.Width,
		WinValue:    o.Win,
		FourPercent: o.FourPercent,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
