package storage

import (
	"context"
	"time"
)

// WithLatency delays every call to s by d. Callers give up early when their
// context is cancelled; the underlying call is then never made.
func WithLatency(s Store, d time.Duration) Store {
	if d <= 0 {
		return s
	}
	return &latencyStore{next: s, delay: d}
}

type latencyStore struct {
	next  Store
	delay time.Duration
}

func (l *latencyStore) wait(ctx context.Context) error {
	t := time.NewTimer(l.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *latencyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}
	return l.next.Get(ctx, key)
}

func (l *latencyStore) Set(ctx context.Context, key string, value []byte) error {
	if err := l.wait(ctx); err != nil {
		return err
	}
	return l.next.Set(ctx, key, value)
}
