package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/progress"
)

func newCatalog(backend *fakeBackend) *CatalogUseCase {
	return NewCatalogUseCase(backend, progress.NewIndicator(), "noimage.png", zap.NewNop())
}

func TestCatalogRefresh(t *testing.T) {
	t.Run("installs snapshot and notifies listeners", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{
			{ID: 1, Title: "Villa", Price: 100},
			{ID: 2, Title: "Plot", Price: 50, Type: "land"},
		}}
		catalog := newCatalog(backend)

		var notified [][]domain.Listing
		catalog.OnChange(func(listings []domain.Listing) {
			notified = append(notified, listings)
		})

		require.NoError(t, catalog.Refresh(context.Background(), false))
		require.Len(t, notified, 1)
		assert.Len(t, catalog.Listings(), 2)
	})

	t.Run("identical payload does not notify again", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 1, Title: "Villa"}}}
		catalog := newCatalog(backend)

		calls := 0
		catalog.OnChange(func([]domain.Listing) { calls++ })

		require.NoError(t, catalog.Refresh(context.Background(), false))
		require.NoError(t, catalog.Refresh(context.Background(), false))
		require.NoError(t, catalog.Refresh(context.Background(), false))

		assert.Equal(t, 1, calls)
	})

	t.Run("changed payload notifies again", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 1, Title: "Villa"}}}
		catalog := newCatalog(backend)

		calls := 0
		catalog.OnChange(func([]domain.Listing) { calls++ })

		require.NoError(t, catalog.Refresh(context.Background(), false))

		backend.mu.Lock()
		backend.listings = []domain.Listing{{ID: 1, Title: "Villa Renamed"}}
		backend.mu.Unlock()

		require.NoError(t, catalog.Refresh(context.Background(), false))
		assert.Equal(t, 2, calls)
	})

	t.Run("fetch failure keeps previous snapshot", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 1, Title: "Villa"}}}
		catalog := newCatalog(backend)

		require.NoError(t, catalog.Refresh(context.Background(), false))

		backend.mu.Lock()
		backend.fetchErr = errors.ErrBackendUnavailable
		backend.mu.Unlock()

		err := catalog.Refresh(context.Background(), false)
		require.Error(t, err)
		assert.Len(t, catalog.Listings(), 1)
	})

	t.Run("normalizes listings before install", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 1, Title: "Garage", Type: "CAR"}}}
		catalog := newCatalog(backend)

		require.NoError(t, catalog.Refresh(context.Background(), false))

		got := catalog.Listings()
		require.Len(t, got, 1)
		assert.Equal(t, "car", got[0].Type)
		assert.Equal(t, []string{"noimage.png"}, got[0].Images)
	})
}

func TestCatalogLookup(t *testing.T) {
	t.Run("fetches fresh collection before resolving", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 7, Title: "Villa"}}}
		catalog := newCatalog(backend)

		listing, err := catalog.Lookup(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Villa", listing.Title)
		assert.Equal(t, 1, backend.fetchCalls)
	})

	t.Run("falls back to cached snapshot when fetch fails", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 7, Title: "Villa"}}}
		catalog := newCatalog(backend)
		require.NoError(t, catalog.Refresh(context.Background(), true))

		backend.mu.Lock()
		backend.fetchErr = errors.ErrBackendUnavailable
		backend.mu.Unlock()

		listing, err := catalog.Lookup(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Villa", listing.Title)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		backend := &fakeBackend{}
		catalog := newCatalog(backend)

		_, err := catalog.Lookup(context.Background(), 99)
		assert.Equal(t, errors.ErrListingNotFound, err)
	})
}
