package filemagic

import (
	"errors"
	"fmt"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/filemagic/magic"
	"github.com/rs/zerolog"
)

// Strategy names accepted by FILEMAGIC_STRATEGY.
const (
	StrategyFull       = "full"
	StrategyBounded    = "bounded"
	StrategyLongEnough = "long-enough"
)

type Config struct {
	// Header bytes read per file (0 = magic.RecommendedReadSize)
	ReadSize int `env:"FILEMAGIC_READ_SIZE,default:0"`

	// Matching strategy (full, bounded, long-enough)
	Strategy string `env:"FILEMAGIC_STRATEGY,default:full"`

	// Header fingerprint algorithm (xxhash, sha256, crc32, none)
	Checksum string `env:"FILEMAGIC_CHECKSUM,default:xxhash"`

	// Concurrent detections in DetectAll
	Workers int `env:"FILEMAGIC_WORKERS,default:4"`

	// Glob applied to watched file names
	WatchPattern string `env:"FILEMAGIC_WATCH_PATTERN,default:**"`

	// zerolog level name
	LogLevel string `env:"FILEMAGIC_LOG_LEVEL,default:warn"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when nothing is set in the environment.
func DefaultConfig() *Config {
	return &Config{
		Strategy:     StrategyFull,
		Checksum:     string(ChecksumXXHash),
		Workers:      4,
		WatchPattern: "**",
		LogLevel:     "warn",
	}
}

// EffectiveReadSize returns ReadSize, or the recommended size when it is 0.
func (c *Config) EffectiveReadSize() int {
	if c.ReadSize == 0 {
		return magic.RecommendedReadSize()
	}
	return c.ReadSize
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.ReadSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, cfg.ReadSize)
	}

	switch cfg.Strategy {
	case StrategyFull, StrategyBounded, StrategyLongEnough:
	default:
		return fmt.Errorf("unknown strategy: %s", cfg.Strategy)
	}

	if cfg.Checksum != "" && cfg.Checksum != string(ChecksumNone) {
		if _, err := NewHasher(ChecksumAlgorithm(cfg.Checksum)); err != nil {
			return err
		}
	}

	if cfg.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	return nil
}
