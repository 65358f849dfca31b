package scheduler

import (
	"context"
	"time"

	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/port"
	"go.uber.org/zap"
)

// ExpirePendingOrders cancels unpaid orders older than the configured TTL
// once per interval, until ctx is done.
func ExpirePendingOrders(ctx context.Context, cfg *config.Orders, expirer port.OrderExpirer, log *zap.Logger) {
	if cfg.PendingTTL <= 0 || cfg.ExpiryInterval <= 0 {
		log.Info("Pending order expiry disabled")
		return
	}

	ticker := time.NewTicker(cfg.ExpiryInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			n, err := expirer.ExpirePendingOrders(ctx, now.Add(-cfg.PendingTTL))
			if err != nil {
				log.Error("Expire pending orders", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("Expired pending orders", zap.Int("count", n))
			}
		case <-ctx.Done():
			log.Debug("Finished expiry scheduler")
			return
		}
	}
}
