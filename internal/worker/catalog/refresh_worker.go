package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/worker"
)

// RefreshWorker polls the listings backend on an interval and feeds the
// catalog. Every poll is silent: the loading indicator is reserved for
// user-initiated loads, and a failed poll just leaves the previous snapshot
// in place until the next tick.
type RefreshWorker struct {
	*worker.BaseWorker
	catalogUC *usecase.CatalogUseCase
	interval  time.Duration
}

func NewRefreshWorker(
	catalogUC *usecase.CatalogUseCase,
	interval time.Duration,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("catalog-refresh", logger),
		catalogUC:  catalogUC,
		interval:   interval,
	}
}

// Start runs the poll loop. The first refresh happens immediately so the site
// has data before the first tick.
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RefreshWorker", zap.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	if err := w.catalogUC.Refresh(ctx, true); err != nil {
		// Already logged by the catalog; nothing else to do until next tick.
		w.Logger().Debug("Scheduled refresh failed", zap.Error(err))
	}
}
