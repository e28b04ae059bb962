package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/usecase/dto"
)

// stubRenderer renders a countable one-line summary instead of real markup.
type stubRenderer struct {
	mu      sync.Mutex
	calls   int
	failNow bool
}

func (r *stubRenderer) ListingGrid(views []dto.ListingView) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failNow {
		return "", fmt.Errorf("render failed")
	}
	titles := ""
	for _, v := range views {
		titles += v.Title + ";"
	}
	return fmt.Sprintf("grid[%d]%s", len(views), titles), nil
}

func (r *stubRenderer) ListingDetail(view dto.ListingView) (string, error) {
	return "detail:" + view.Title, nil
}

func (r *stubRenderer) BrokerRequestList(views []dto.BrokerRequestView) (string, error) {
	return fmt.Sprintf("brokers[%d]", len(views)), nil
}

func newView(backend *fakeBackend, rend *stubRenderer) (*ViewUseCase, *CatalogUseCase) {
	catalog := newCatalog(backend)
	view := NewViewUseCase(catalog, rend, "en", "/uploads", zap.NewNop())
	return view, catalog
}

func TestViewRedraw(t *testing.T) {
	t.Run("catalog change redraws the page", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{
			{ID: 1, Title: "Villa"},
			{ID: 2, Title: "Plot", Type: "land"},
		}}
		view, catalog := newView(backend, &stubRenderer{})

		require.NoError(t, catalog.Refresh(context.Background(), true))
		assert.Equal(t, "grid[2]Villa;Plot;", view.Page(""))
	})

	t.Run("criteria change filters the current snapshot", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{
			{ID: 1, Title: "Villa"},
			{ID: 2, Title: "Plot", Type: "land"},
		}}
		view, catalog := newView(backend, &stubRenderer{})
		require.NoError(t, catalog.Refresh(context.Background(), true))

		view.SetCriteria(domain.FilterCriteria{Category: domain.TypeLand})
		assert.Equal(t, "grid[1]Plot;", view.Page(""))

		view.SetCriteria(domain.FilterCriteria{})
		assert.Equal(t, "grid[2]Villa;Plot;", view.Page(""))
	})

	t.Run("pages are cached per language", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{
			ID:        1,
			Title:     "Villa",
			TitleJSON: map[string]string{"en": "Villa", "am": "ቪላ"},
		}}}
		view, catalog := newView(backend, &stubRenderer{})
		require.NoError(t, catalog.Refresh(context.Background(), true))

		// One visitor reading in Amharic must not change the English page.
		assert.Equal(t, "grid[1]Villa;", view.Page("en"))
		assert.Equal(t, "grid[1]ቪላ;", view.Page("am"))
		assert.Equal(t, "grid[1]Villa;", view.Page("en"))
	})

	t.Run("criteria change redraws every cached language", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{
			{ID: 1, Title: "Villa", TitleJSON: map[string]string{"en": "Villa", "am": "ቪላ"}},
			{ID: 2, Title: "Plot", Type: "land"},
		}}
		view, catalog := newView(backend, &stubRenderer{})
		require.NoError(t, catalog.Refresh(context.Background(), true))

		_ = view.Page("en")
		_ = view.Page("am")

		view.SetCriteria(domain.FilterCriteria{Category: domain.TypeHouse})
		assert.Equal(t, "grid[1]Villa;", view.Page("en"))
		assert.Equal(t, "grid[1]ቪላ;", view.Page("am"))
	})

	t.Run("render failure keeps the previous page", func(t *testing.T) {
		backend := &fakeBackend{listings: []domain.Listing{{ID: 1, Title: "Villa"}}}
		rend := &stubRenderer{}
		view, catalog := newView(backend, rend)
		require.NoError(t, catalog.Refresh(context.Background(), true))
		before := view.Page("")

		rend.mu.Lock()
		rend.failNow = true
		rend.mu.Unlock()

		view.SetCriteria(domain.FilterCriteria{Text: "plot"})
		assert.Equal(t, before, view.Page(""))
	})

	t.Run("first page access renders lazily", func(t *testing.T) {
		backend := &fakeBackend{}
		view, _ := newView(backend, &stubRenderer{})

		assert.Equal(t, "grid[0]", view.Page(""))
	})
}
