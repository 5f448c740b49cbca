// Package config holds the tunables of the clustering engine, decoded from
// a TOML file. Zero values take documented defaults via Fill.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

var (
	// ErrInvalidConfig indicates a value outside its documented range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownKey indicates a key that no field decodes.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the root of the TOML document.
type Config struct {
	SymNMF     SymNMFConfig     `toml:"symnmf"`
	KMeans     KMeansConfig     `toml:"kmeans"`
	Similarity SimilarityConfig `toml:"similarity"`
	Log        LogConfig        `toml:"log"`
}

// SymNMFConfig tunes the factorization.
type SymNMFConfig struct {
	Tolerance float64 `toml:"tolerance"`
	MaxIter   int     `toml:"max-iter"`
	Epsilon   float64 `toml:"epsilon"`
	// Beta is the update damping in (0, 1]; 1 is undamped and may oscillate.
	Beta float64 `toml:"beta"`
	// Seed for H₀. Zero selects symnmf.DefaultSeed.
	Seed uint64 `toml:"seed"`
}

// KMeansConfig tunes the baseline.
type KMeansConfig struct {
	MaxIter int     `toml:"max-iter"`
	Epsilon float64 `toml:"epsilon"`
}

// SimilarityConfig tunes the similarity builder.
type SimilarityConfig struct {
	// Workers bounds row parallelism; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// Default returns a filled configuration.
func Default() *Config {
	c := &Config{}
	c.Fill()

	return c
}

// Load decodes the TOML file at path, fills defaults and validates.
// An empty path yields Default().
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: %s: %q: %w", path, undecoded[0].String(), ErrUnknownKey)
		}
	}
	c.Fill()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Fill replaces zero values with defaults.
func (c *Config) Fill() {
	if c.SymNMF.Tolerance == 0 {
		c.SymNMF.Tolerance = symnmf.DefaultTolerance
	}
	if c.SymNMF.MaxIter == 0 {
		c.SymNMF.MaxIter = symnmf.DefaultMaxIter
	}
	if c.SymNMF.Epsilon == 0 {
		c.SymNMF.Epsilon = symnmf.DefaultEpsilon
	}
	if c.SymNMF.Beta == 0 {
		c.SymNMF.Beta = symnmf.DefaultBeta
	}
	if c.SymNMF.Seed == 0 {
		c.SymNMF.Seed = symnmf.DefaultSeed
	}
	if c.KMeans.MaxIter == 0 {
		c.KMeans.MaxIter = kmeans.DefaultMaxIter
	}
	if c.KMeans.Epsilon == 0 {
		c.KMeans.Epsilon = kmeans.DefaultEpsilon
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
}

// Validate checks every field against its documented range.
func (c *Config) Validate() error {
	switch {
	case !positive(c.SymNMF.Tolerance):
		return fmt.Errorf("symnmf.tolerance = %g: %w", c.SymNMF.Tolerance, ErrInvalidConfig)
	case c.SymNMF.MaxIter < 1:
		return fmt.Errorf("symnmf.max-iter = %d: %w", c.SymNMF.MaxIter, ErrInvalidConfig)
	case !positive(c.SymNMF.Epsilon):
		return fmt.Errorf("symnmf.epsilon = %g: %w", c.SymNMF.Epsilon, ErrInvalidConfig)
	case !(c.SymNMF.Beta > 0 && c.SymNMF.Beta <= 1):
		return fmt.Errorf("symnmf.beta = %g: %w", c.SymNMF.Beta, ErrInvalidConfig)
	case c.KMeans.MaxIter < 1 || c.KMeans.MaxIter >= kmeans.MaxIterLimit:
		return fmt.Errorf("kmeans.max-iter = %d: %w", c.KMeans.MaxIter, ErrInvalidConfig)
	case !positive(c.KMeans.Epsilon):
		return fmt.Errorf("kmeans.epsilon = %g: %w", c.KMeans.Epsilon, ErrInvalidConfig)
	case c.Similarity.Workers < 0:
		return fmt.Errorf("similarity.workers = %d: %w", c.Similarity.Workers, ErrInvalidConfig)
	case c.Log.Format != "console" && c.Log.Format != "json":
		return fmt.Errorf("log.format = %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level = %q: %w: %w", c.Log.Level, ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the section into symnmf options.
func (c SymNMFConfig) Options() []symnmf.Option {
	return []symnmf.Option{
		symnmf.WithTolerance(c.Tolerance),
		symnmf.WithMaxIter(c.MaxIter),
		symnmf.WithEpsilon(c.Epsilon),
		symnmf.WithBeta(c.Beta),
	}
}

// Options converts the section into kmeans options.
func (c KMeansConfig) Options() []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithMaxIter(c.MaxIter),
		kmeans.WithEpsilon(c.Epsilon),
	}
}

// Options converts the section into similarity options.
func (c SimilarityConfig) Options() []similarity.Option {
	return []similarity.Option{similarity.WithWorkers(c.Workers)}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
