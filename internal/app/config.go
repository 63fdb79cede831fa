package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"srpprim/internal/digest"
)

// MaxRandomBits bounds Random.Bits so a typo cannot request gigabytes.
const MaxRandomBits = 1 << 16

// Config holds runtime options, decoded from a TOML file.
type Config struct {
	Log     LogConfig
	Digest  DigestConfig
	Random  RandomConfig
	Vectors VectorsConfig
}

// LogConfig selects level and output format.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
	JSON  bool
	Color bool
}

// DigestConfig selects the digest algorithm used when none is given.
type DigestConfig struct {
	Algorithm string
}

// RandomConfig sets the default bit length for random integers.
type RandomConfig struct {
	Bits int
}

// VectorsConfig points at an optional known-answer vector file.
type VectorsConfig struct {
	Path string `toml:",omitempty"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Digest: DigestConfig{Algorithm: string(digest.Default)},
		Random: RandomConfig{Bits: 256},
	}
}

// LoadConfig decodes path over DefaultConfig and checks the result.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %v: %w", path, err)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %v: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("check config %v: %w", path, err)
	}
	return cfg, nil
}

// Check validates every field.
func (c Config) Check() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := digest.ParseAlgorithm(c.Digest.Algorithm); err != nil {
		return err
	}
	if c.Random.Bits < 1 || c.Random.Bits > MaxRandomBits {
		return fmt.Errorf("random bits %d out of range [1, %d]", c.Random.Bits, MaxRandomBits)
	}
	if strings.TrimSpace(c.Vectors.Path) != c.Vectors.Path {
		return errors.New("vectors path has surrounding whitespace")
	}
	return nil
}
