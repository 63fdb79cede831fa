package app

import (
	"srpprim/internal/digest"
	"srpprim/internal/domain"
	"srpprim/internal/store"
)

// Wire bundles the configured factories and stores for the CLI.
type Wire struct {
	Config    Config
	Algorithm digest.Algorithm
	RandBits  int
	Vectors   domain.VectorStore // nil when no vector file is configured
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	alg, err := digest.ParseAlgorithm(cfg.Digest.Algorithm)
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Config:    cfg,
		Algorithm: alg,
		RandBits:  cfg.Random.Bits,
	}
	if cfg.Vectors.Path != "" {
		w.Vectors = store.NewVectorFileStore(cfg.Vectors.Path)
	}
	return w, nil
}

// NewDigest returns a fresh digest for the configured algorithm.
func (w *Wire) NewDigest() (*digest.Digest, error) {
	return digest.NewAlgorithm(w.Algorithm)
}
