// Package service combines the InChI library, the molecule model and the
// result cache into the operations exposed by the CLI and the HTTP server.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chemkit/inchi-go/internal/cache"
	"github.com/chemkit/inchi-go/pkg/inchi"
	"github.com/chemkit/inchi-go/pkg/inchi/logging"
	"github.com/chemkit/inchi-go/pkg/molecule"
)

// Backend performs the conversions. *inchi.Library implements it.
type Backend interface {
	FromStructure(ctx context.Context, in *inchi.Input) (*inchi.Result, error)
	ToStructure(ctx context.Context, inchiStr, options string) (*inchi.Structure, error)
	Key(ctx context.Context, inchiStr string, opts inchi.KeyOptions) (*inchi.Key, error)
	Version() string
	Settings() inchi.Settings
}

// Store caches conversion results. *cache.Cache implements it.
type Store interface {
	GetResult(ctx context.Context, fingerprint string) (*inchi.Result, error)
	PutResult(ctx context.Context, fingerprint string, res *inchi.Result) error
	GetKey(ctx context.Context, inchiStr string, opts inchi.KeyOptions) (*inchi.Key, error)
	PutKey(ctx context.Context, inchiStr string, opts inchi.KeyOptions, k *inchi.Key) error
}

var (
	_ Backend = (*inchi.Library)(nil)
	_ Store   = (*cache.Cache)(nil)
)

// VersionInfo describes the running wrapper and native library.
type VersionInfo struct {
	Wrapper string `json:"wrapper"`
	Library string `json:"library"`
}

// Service is safe for concurrent use when its Backend and Store are.
type Service struct {
	backend Backend
	store   Store
	log     logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithStore enables read-through caching.
func WithStore(s Store) Option {
	return func(svc *Service) { svc.store = s }
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l logging.Logger) Option {
	return func(svc *Service) { svc.log = l }
}

// New returns a Service backed by b.
func New(b Backend, opts ...Option) *Service {
	svc := &Service{backend: b}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.New(nil)
	}
	return svc
}

// Generate computes the InChI of mol.
func (s *Service) Generate(ctx context.Context, mol *molecule.Molecule, options string) (*inchi.Result, error) {
	if mol == nil {
		return nil, fmt.Errorf("%w: nil molecule", inchi.ErrInvalidInput)
	}
	in, err := mol.ToInput(inchi.NormalizeOptions(options))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", inchi.ErrInvalidInput, err)
	}

	var fp string
	if s.store != nil {
		fp, err = cache.Fingerprint(in, s.backend.Settings())
		if err != nil {
			s.log.Warn(ctx, "fingerprint failed", "error", err)
		} else if res, err := s.store.GetResult(ctx, fp); err == nil {
			s.log.Debug(ctx, "result cache hit", "fingerprint", fp)
			return res, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn(ctx, "result cache read failed", "error", err)
		}
	}

	res, err := s.backend.FromStructure(ctx, in)
	if err != nil {
		return nil, err
	}
	if s.store != nil && fp != "" {
		if err := s.store.PutResult(ctx, fp, res); err != nil {
			s.log.Warn(ctx, "result cache write failed", "error", err)
		}
	}
	return res, nil
}

// Parse converts an InChI string into a molecule.
func (s *Service) Parse(ctx context.Context, inchiStr, options string) (*molecule.Molecule, error) {
	st, err := s.backend.ToStructure(ctx, inchiStr, options)
	if err != nil {
		return nil, err
	}
	mol, err := molecule.FromStructure(st)
	if err != nil {
		return nil, fmt.Errorf("service: parse %s: %w", logging.Abbrev("inchi", inchiStr, 64).Value, err)
	}
	return mol, nil
}

// Key computes the InChIKey of inchiStr.
func (s *Service) Key(ctx context.Context, inchiStr string, opts inchi.KeyOptions) (*inchi.Key, error) {
	if s.store != nil && inchiStr != "" {
		k, err := s.store.GetKey(ctx, inchiStr, opts)
		if err == nil {
			return k, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn(ctx, "key cache read failed", "error", err)
		}
	}

	k, err := s.backend.Key(ctx, inchiStr, opts)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.PutKey(ctx, inchiStr, opts, k); err != nil {
			s.log.Warn(ctx, "key cache write failed", "error", err)
		}
	}
	return k, nil
}

// Version reports the wrapper and library versions.
func (s *Service) Version() VersionInfo {
	return VersionInfo{Wrapper: inchi.WrapperVersion(), Library: s.backend.Version()}
}
