package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/progress"
)

// ChangeListener is invoked with the new collection after a snapshot swap.
type ChangeListener func(listings []domain.Listing)

// CatalogUseCase owns the authoritative in-memory listing collection. It is
// the only writer; everyone else receives read-only copies. Snapshots are
// replaced wholesale, never mutated.
type CatalogUseCase struct {
	backend     repository.ListingBackend
	indicator   *progress.Indicator
	logger      *zap.Logger
	placeholder string

	mu          sync.RWMutex
	listings    []domain.Listing
	fingerprint string
	listeners   []ChangeListener
}

// NewCatalogUseCase creates the catalog with an empty snapshot.
func NewCatalogUseCase(
	backend repository.ListingBackend,
	indicator *progress.Indicator,
	placeholder string,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		backend:     backend,
		indicator:   indicator,
		logger:      logger,
		placeholder: placeholder,
	}
}

// OnChange registers a listener notified after every snapshot swap.
// Listeners must be registered before the first refresh.
func (uc *CatalogUseCase) OnChange(listener ChangeListener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, listener)
}

// Refresh fetches the full collection and swaps the snapshot only when its
// fingerprint differs from the last-known one, so unchanged backend state
// never causes a redraw. silent suppresses the shared loading indicator but
// changes nothing else. A fetch or decode failure keeps the previous
// snapshot and degrades silently.
//
// Overlapping refreshes are not sequenced or cancelled; whichever response
// completes last installs its snapshot (last-response-wins).
func (uc *CatalogUseCase) Refresh(ctx context.Context, silent bool) error {
	if !silent {
		uc.indicator.Begin()
		defer uc.indicator.End()
	}

	fetched, err := uc.backend.FetchListings(ctx)
	if err != nil {
		uc.logger.Warn("Catalog refresh failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	uc.install(domain.NormalizeAll(fetched, uc.placeholder))
	return nil
}

// install swaps the snapshot when changed and notifies listeners outside the
// lock.
func (uc *CatalogUseCase) install(normalized []domain.Listing) {
	fp := domain.Fingerprint(normalized)

	uc.mu.Lock()
	if fp == uc.fingerprint {
		uc.mu.Unlock()
		uc.logger.Debug("Catalog unchanged, skipping redraw")
		return
	}
	uc.listings = normalized
	uc.fingerprint = fp
	listeners := make([]ChangeListener, len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.mu.Unlock()

	uc.logger.Info("Catalog snapshot replaced", zap.Int("count", len(normalized)))
	for _, listener := range listeners {
		listener(normalized)
	}
}

// Lookup serves the detail view: it always fetches a fresh collection first,
// because detail needs guaranteed-fresh data even when the list view is
// satisfied with the cached snapshot. On fetch failure it falls back to the
// cached snapshot rather than failing the page.
func (uc *CatalogUseCase) Lookup(ctx context.Context, id int) (*domain.Listing, error) {
	fetched, err := uc.backend.FetchListings(ctx)
	if err != nil {
		uc.logger.Warn("Fresh detail fetch failed, falling back to cached snapshot",
			zap.Int("id", id), zap.Error(err))
	} else {
		uc.install(domain.NormalizeAll(fetched, uc.placeholder))
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, l := range uc.listings {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, errors.ErrListingNotFound
}

// Listings returns a read-only copy of the current snapshot.
func (uc *CatalogUseCase) Listings() []domain.Listing {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]domain.Listing, len(uc.listings))
	copy(out, uc.listings)
	return out
}
