package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs the duration and outcome of a named operation using the
// request-scoped logger carried in ctx.
//
// Usage:
//
//	defer obs.Time(ctx, "vroom.solve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().Str("op", name).Dur("dur", dur).Err(*errp).Msg("op failed")
			return
		}
		logger.Debug().Str("op", name).Dur("dur", dur).Msg("op done")
	}
}
