package clock

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall-clock reads so services never call time.Now directly.
type Clock interface {
	Now(ctx context.Context) time.Time
}

type SystemClock struct{}

func (SystemClock) Now(ctx context.Context) time.Time {
	return time.Now().UTC()
}

// Module provides the system clock.
var Module = fx.Module("clock",
	fx.Provide(func() Clock { return SystemClock{} }),
)
