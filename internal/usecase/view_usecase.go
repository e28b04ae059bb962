package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/renderer"
	"github.com/listing-microservice/internal/usecase/dto"
)

// ViewUseCase holds the active filter criteria of the public page and keeps
// its rendered form current. Pages are cached per language, so one visitor's
// preference never changes what another visitor sees; catalog changes and
// criteria updates redraw every cached language over the new snapshot.
type ViewUseCase struct {
	catalog         *CatalogUseCase
	rend            renderer.Renderer
	defaultLanguage string
	uploadsPath     string
	logger          *zap.Logger

	mu       sync.RWMutex
	criteria domain.FilterCriteria
	pages    map[string]string
}

// NewViewUseCase wires the view state to the catalog's change feed.
func NewViewUseCase(
	catalog *CatalogUseCase,
	rend renderer.Renderer,
	defaultLanguage, uploadsPath string,
	logger *zap.Logger,
) *ViewUseCase {
	uc := &ViewUseCase{
		catalog:         catalog,
		rend:            rend,
		defaultLanguage: defaultLanguage,
		uploadsPath:     uploadsPath,
		logger:          logger,
		pages:           make(map[string]string),
	}
	catalog.OnChange(uc.redraw)
	return uc
}

// SetCriteria installs new filter criteria and redraws immediately over the
// current snapshot.
func (uc *ViewUseCase) SetCriteria(criteria domain.FilterCriteria) {
	uc.mu.Lock()
	uc.criteria = criteria
	uc.mu.Unlock()

	uc.redraw(uc.catalog.Listings())
}

// Criteria returns the currently active filter criteria.
func (uc *ViewUseCase) Criteria() domain.FilterCriteria {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.criteria
}

// Page returns the cached rendered listing page for the given language,
// rendering it lazily on first access.
func (uc *ViewUseCase) Page(lang string) string {
	if lang == "" {
		lang = uc.defaultLanguage
	}

	uc.mu.RLock()
	page, ok := uc.pages[lang]
	uc.mu.RUnlock()
	if ok {
		return page
	}

	uc.render(uc.catalog.Listings(), lang)

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.pages[lang]
}

// redraw re-renders every cached language over the new snapshot.
func (uc *ViewUseCase) redraw(listings []domain.Listing) {
	uc.mu.RLock()
	langs := make([]string, 0, len(uc.pages))
	for lang := range uc.pages {
		langs = append(langs, lang)
	}
	uc.mu.RUnlock()

	if len(langs) == 0 {
		langs = []string{uc.defaultLanguage}
	}
	for _, lang := range langs {
		uc.render(listings, lang)
	}
}

func (uc *ViewUseCase) render(listings []domain.Listing, lang string) {
	uc.mu.RLock()
	criteria := uc.criteria
	uc.mu.RUnlock()

	filtered := domain.FilterListings(listings, criteria)
	views := dto.NewListingViews(filtered, lang, uc.uploadsPath)

	html, err := uc.rend.ListingGrid(views)
	if err != nil {
		// Keep serving the previous page; a render failure must not blank
		// the site.
		uc.logger.Error("Failed to render listing page",
			zap.String("language", lang), zap.Error(err))
		return
	}

	uc.mu.Lock()
	uc.pages[lang] = html
	uc.mu.Unlock()

	uc.logger.Debug("Listing page redrawn",
		zap.String("language", lang),
		zap.Int("visible", len(filtered)),
		zap.Int("total", len(listings)))
}
