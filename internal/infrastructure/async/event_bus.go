package async

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"shopservice/internal/domain"
)

// AsyncEventBus writes domain events to the log off the request path.
type AsyncEventBus struct {
	pool *WorkerPool
	log  *zap.Logger
}

func NewAsyncEventBus(ctx context.Context, poolSize int, log *zap.Logger) *AsyncEventBus {
	log = log.Named("events")
	return &AsyncEventBus{
		pool: NewWorkerPool(ctx, poolSize, 2*time.Second, log),
		log:  log,
	}
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	fields := eventFields(e)
	queued := b.pool.Submit(context.WithoutCancel(ctx), func(_ context.Context) {
		b.log.Info("domain_event", fields...)
	})
	if !queued {
		b.log.Warn("domain event dropped", fields...)
	}
}

func eventFields(e domain.Event) []zap.Field {
	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("type", e.Type))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, e.Payload[k]))
	}
	return fields
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}
