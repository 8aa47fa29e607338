package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	windowListPrefix = "windows:list:"
	windowIDPrefix   = "windows:id:"
)

type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// WindowSource caches window reads in front of another source.
// Booking state is never cached here; it is always read live.
// Cache failures fall through to the wrapped source.
type WindowSource struct {
	next    shared.WindowSource
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewWindowSource(next shared.WindowSource, store Store, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *WindowSource {
	return &WindowSource{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func (c *WindowSource) ListWindows(ctx context.Context, filter shared.WindowFilter) ([]scheduling.TimeWindow, error) {
	key, err := listKey(filter)
	if err != nil {
		return c.next.ListWindows(ctx, filter)
	}

	var cached []scheduling.TimeWindow
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	windows, err := c.next.ListWindows(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, windows)
	return windows, nil
}

func (c *WindowSource) FindWindow(ctx context.Context, id uuid.UUID) (*scheduling.TimeWindow, error) {
	key := windowIDPrefix + id.String()

	var cached scheduling.TimeWindow
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	w, err := c.next.FindWindow(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, w)
	return w, nil
}

func (c *WindowSource) lookup(ctx context.Context, key string, dest any) bool {
	err := c.store.Get(ctx, key, dest)
	if err == nil {
		c.metrics.CacheLookup(true)
		return true
	}
	if !errs.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "window cache read failed", "key", key, "error", err.Error())
	}
	c.metrics.CacheLookup(false)
	return false
}

func (c *WindowSource) put(ctx context.Context, key string, value any) {
	if err := c.store.Set(ctx, key, value, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "window cache write failed", "key", key, "error", err.Error())
	}
}

func listKey(filter shared.WindowFilter) (string, error) {
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return windowListPrefix + hex.EncodeToString(sum[:]), nil
}
