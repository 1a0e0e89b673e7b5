package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const refreshTimeout = 30 * time.Second

// DemoFeedRefresher reloads the demo document into the feed cache.
type DemoFeedRefresher interface {
	RefreshDemo(ctx context.Context) ([]byte, error)
}

// StartFeedRefresh warms the cache once and then refreshes it on spec, a
// standard five-field cron expression. The returned cron must be stopped by
// the caller.
func StartFeedRefresh(ctx context.Context, spec string, refresher DemoFeedRefresher, logger *zap.Logger) (*cron.Cron, error) {
	run := func() {
		runCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		if _, err := refresher.RefreshDemo(runCtx); err != nil {
			logger.Warn("scheduled demo feed refresh failed", zap.Error(err))
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, run); err != nil {
		return nil, err
	}

	run()
	c.Start()
	logger.Info("demo feed refresh scheduled", zap.String("cron", spec))
	return c, nil
}
