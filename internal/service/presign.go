package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"gyccsite/internal/config"
	"gyccsite/internal/storage"
)

const (
	defaultURLExpiry       = time.Hour
	defaultMaxPresignKeys  = 100
	defaultSignConcurrency = 16
)

// Presigner mints time-limited GET URLs for object keys.
// Signing is local to the client; a failure for one key never fails the batch.
type Presigner struct {
	store       storage.Storage
	expiry      time.Duration
	maxKeys     int
	concurrency int
	metrics     *Metrics
	tracer      trace.Tracer
}

// NewPresigner creates a Presigner. Zero config values fall back to one hour,
// 100 keys per batch and 16 concurrent signings.
func NewPresigner(store storage.Storage, cfg config.GalleryConfig, m *Metrics) *Presigner {
	p := &Presigner{
		store:       store,
		expiry:      cfg.URLExpiry,
		maxKeys:     cfg.MaxPresignKeys,
		concurrency: cfg.SignConcurrency,
		metrics:     m,
		tracer:      otel.Tracer("gyccsite/internal/service"),
	}
	if p.expiry <= 0 {
		p.expiry = defaultURLExpiry
	}
	if p.maxKeys <= 0 {
		p.maxKeys = defaultMaxPresignKeys
	}
	if p.concurrency <= 0 {
		p.concurrency = defaultSignConcurrency
	}
	return p
}

// Expiry returns the default URL lifetime.
func (p *Presigner) Expiry() time.Duration { return p.expiry }

// SignBatch validates a caller-supplied batch and signs it with the default expiry.
// A nil batch is missing; an empty one yields an empty map. A rejected batch
// performs no signing.
func (p *Presigner) SignBatch(ctx context.Context, keys []string) (map[string]*string, error) {
	if keys == nil {
		return nil, ErrKeysRequired
	}
	if len(keys) == 0 {
		return map[string]*string{}, nil
	}
	if len(keys) > p.maxKeys {
		return nil, ErrTooManyKeys
	}
	return p.Sign(ctx, keys, p.expiry), nil
}

// Sign presigns every distinct key concurrently. The result has exactly one
// entry per distinct input key; keys that could not be signed map to nil.
// Keys go to the store in batches of at most the configured cap.
// A ttl outside (0, default] is replaced by the default.
func (p *Presigner) Sign(ctx context.Context, keys []string, ttl time.Duration) map[string]*string {
	if ttl <= 0 || ttl > p.expiry {
		ttl = p.expiry
	}

	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	out := make(map[string]*string, len(unique))
	for lo := 0; lo < len(unique); lo += p.maxKeys {
		hi := min(lo+p.maxKeys, len(unique))
		p.signBatch(ctx, unique[lo:hi], ttl, out)
	}
	return out
}

func (p *Presigner) signBatch(ctx context.Context, batch []string, ttl time.Duration, out map[string]*string) {
	ctx, span := p.tracer.Start(ctx, "presigner.Sign")
	defer span.End()

	urls := make([]*string, len(batch))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, key := range batch {
		g.Go(func() error {
			u, err := p.store.PresignGet(ctx, key, ttl)
			if err != nil {
				p.metrics.presignFailed()
				zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("presign failed")
				return nil
			}
			urls[i] = &u
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, k := range batch {
		out[k] = urls[i]
		if urls[i] == nil {
			failed++
		}
	}
	span.SetAttributes(
		attribute.Int("presign.keys", len(batch)),
		attribute.Int("presign.failed", failed),
	)
}
