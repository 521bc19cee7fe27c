package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ThrottleConfig holds limits applied by a ThrottledStore.
type ThrottleConfig struct {
	// MaxConcurrency is the maximum number of in-flight store operations.
	// If 0, defaults to 1.
	MaxConcurrency int64

	// ByteLimitPerSec is the maximum read/write throughput.
	// If 0, unlimited.
	ByteLimitPerSec int64
}

// ThrottledStore wraps a Store and limits operation concurrency and byte
// throughput. Useful when persisting many vectors against a shared backend.
type ThrottledStore struct {
	inner Store

	sem     *semaphore.Weighted
	limiter *rate.Limiter // nil if unlimited
}

// NewThrottledStore creates a throttled wrapper around inner.
func NewThrottledStore(inner Store, cfg ThrottleConfig) *ThrottledStore {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}

	s := &ThrottledStore{
		inner: inner,
		sem:   semaphore.NewWeighted(cfg.MaxConcurrency),
	}

	if cfg.ByteLimitPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.ByteLimitPerSec), int(cfg.ByteLimitPerSec))
	}

	return s
}

func (s *ThrottledStore) acquire(ctx context.Context, bytes int) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	if s.limiter != nil && bytes > 0 {
		if err := s.limiter.WaitN(ctx, bytes); err != nil {
			s.sem.Release(1)

			return err
		}
	}

	return nil
}

// Put writes a blob through the inner store, honoring the limits.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.acquire(ctx, len(data)); err != nil {
		return err
	}
	defer s.sem.Release(1)

	return s.inner.Put(ctx, name, data)
}

// Open opens a blob for reading. The returned blob counts its reads
// against the byte limit.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := s.acquire(ctx, 0); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledBlob{inner: b, limiter: s.limiter}, nil
}

// Delete removes a blob through the inner store.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	if err := s.acquire(ctx, 0); err != nil {
		return err
	}
	defer s.sem.Release(1)

	return s.inner.Delete(ctx, name)
}

// List returns blob names from the inner store.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.acquire(ctx, 0); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	return s.inner.List(ctx, prefix)
}

type throttledBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

func (b *throttledBlob) ReadAt(p []byte, off int64) (int, error) {
	if b.limiter != nil && len(p) > 0 {
		if err := b.limiter.WaitN(context.Background(), len(p)); err != nil {
			return 0, err
		}
	}

	return b.inner.ReadAt(p, off)
}

func (b *throttledBlob) Close() error {
	return b.inner.Close()
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}
