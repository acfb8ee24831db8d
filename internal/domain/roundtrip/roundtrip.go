// Package roundtrip counts storage round trips issued on behalf of one
// operation. Repositories call Record for every statement they send; callers
// that want the cost of an operation wrap its context with Track.
package roundtrip

import (
	"context"
	"sync/atomic"
)

type ctxKey struct{}

type Counter struct {
	n atomic.Int64
}

func (c *Counter) Count() int {
	if c == nil {
		return 0
	}
	return int(c.n.Load())
}

// Track returns a child context carrying a fresh counter. Nested Track calls
// shadow the outer counter.
func Track(ctx context.Context) (context.Context, *Counter) {
	c := &Counter{}
	return context.WithValue(ctx, ctxKey{}, c), c
}

// Record adds one round trip to the counter in ctx, if any.
func Record(ctx context.Context) {
	if c, ok := ctx.Value(ctxKey{}).(*Counter); ok {
		c.n.Add(1)
	}
}
