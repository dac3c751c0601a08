package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/core/domain"
	"model-serving-service/internal/core/model"
	ports "model-serving-service/internal/core/ports/output"
)

// ModelStore owns the single verified, deserialized model for the
// process. The first GetModel call runs the full load sequence (fetch,
// verify, decode, cache) exactly once; concurrent first callers share
// that one load, and every later call returns the cached instance.
//
// An integrity or deserialization failure on the first load poisons
// the store: subsequent GetModel calls return the recorded error
// without touching storage again. A storage-level not-found does not
// poison, so callers may retry. An explicit successful Reload swaps the
// cached reference atomically and clears a poisoned state; readers
// holding the previous instance are unaffected.
type ModelStore struct {
	repo        ports.ArtifactRepository
	verifier    *ArtifactVerifier
	loadTimeout time.Duration

	mu        sync.Mutex // guards the load sequence and fatalErr
	current   atomic.Pointer[domain.LoadedModel]
	fatalErr  error
	loadCount atomic.Int64
}

func NewModelStore(repo ports.ArtifactRepository, verifier *ArtifactVerifier, loadTimeout time.Duration) *ModelStore {
	return &ModelStore{repo: repo, verifier: verifier, loadTimeout: loadTimeout}
}

// GetModel returns the cached model, loading it on first use.
func (s *ModelStore) GetModel(ctx context.Context) (*domain.LoadedModel, error) {
	if m := s.current.Load(); m != nil {
		return m, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have finished the load while we waited.
	if m := s.current.Load(); m != nil {
		return m, nil
	}
	if s.fatalErr != nil {
		return nil, s.fatalErr
	}

	m, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrityViolation) || errors.Is(err, domain.ErrDeserialization) {
			s.fatalErr = err
		}
		return nil, err
	}

	s.current.Store(m)
	return m, nil
}

// Reload runs the full load sequence against the (possibly updated)
// artifact and atomically swaps the cached reference on success. On
// failure the previously cached model keeps serving and the error is
// returned.
func (s *ModelStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx)
	if err != nil {
		log.WithError(err).Error("model reload failed; previous model remains active")
		return err
	}

	s.fatalErr = nil
	s.current.Store(m)
	log.WithFields(log.Fields{
		"model_version": m.Metadata.Version,
		"model_type":    m.Metadata.ModelType,
	}).Info("model reloaded")
	return nil
}

// Loaded reports whether a model is currently cached.
func (s *ModelStore) Loaded() bool { return s.current.Load() != nil }

// LoadCount returns the number of successful artifact deserializations.
func (s *ModelStore) LoadCount() int64 { return s.loadCount.Load() }

func (s *ModelStore) load(ctx context.Context) (*domain.LoadedModel, error) {
	fetchCtx := ctx
	if s.loadTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.loadTimeout)
		defer cancel()
	}

	artifact, err := s.repo.Fetch(fetchCtx)
	if err != nil {
		// A hung backing store is indistinguishable from a missing one.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: storage read timed out after %s", domain.ErrArtifactNotFound, s.loadTimeout)
		}
		return nil, err
	}

	meta := artifact.Metadata
	if err := s.verifier.Verify(artifact.Bytes, meta); err != nil {
		log.WithError(err).WithField("model_version", meta.Version).Error("artifact failed integrity verification")
		return nil, err
	}

	predictor, err := model.Decode(meta.ModelType, artifact.Bytes)
	if err != nil {
		return nil, err
	}

	if len(meta.Features) != predictor.NumFeatures() {
		return nil, fmt.Errorf("%w: metadata declares %d features, model expects %d",
			domain.ErrDeserialization, len(meta.Features), predictor.NumFeatures())
	}
	if len(meta.Classes) != predictor.NumClasses() {
		return nil, fmt.Errorf("%w: metadata declares %d classes, model produces %d",
			domain.ErrDeserialization, len(meta.Classes), predictor.NumClasses())
	}

	s.loadCount.Add(1)
	log.WithFields(log.Fields{
		"model_version": meta.Version,
		"model_type":    meta.ModelType,
		"accuracy":      meta.Accuracy,
	}).Info("model loaded")

	return &domain.LoadedModel{
		Predictor: predictor,
		Metadata:  meta,
		LoadedAt:  time.Now(),
	}, nil
}
