package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/utils"
	"github.com/listing-microservice/internal/pkg/validator"
	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/usecase/dto"
)

// ListingHandler serves the public listing collection and single listings.
type ListingHandler struct {
	catalogUC   *usecase.CatalogUseCase
	favoritesUC *usecase.FavoritesUseCase
	uploadsPath string
	logger      *zap.Logger
}

func NewListingHandler(
	catalogUC *usecase.CatalogUseCase,
	favoritesUC *usecase.FavoritesUseCase,
	uploadsPath string,
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		catalogUC:   catalogUC,
		favoritesUC: favoritesUC,
		uploadsPath: uploadsPath,
		logger:      logger,
	}
}

// List godoc
// @Summary List listings
// @Description Returns the filtered listing collection plus the per-category tab counts computed over the full catalog. The text filter matches title, description and location; bedrooms "4" means four or more and only applies to houses and apartments.
// @Tags Listings
// @Accept json
// @Produce json
// @Param q query string false "Free-text filter"
// @Param min_price query number false "Minimum price" default(0)
// @Param max_price query number false "Maximum price, 0 means unbounded" default(0)
// @Param bedrooms query string false "Bedroom count, 4 means 4+"
// @Param category query string false "Category tab (house, apartment, land, properties)"
// @Param language query string false "Display language (en, am, ti)"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingCollectionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	var req dto.ListingFilterRequest
	req.Text = c.Query("q")
	req.MinPrice = c.QueryFloat("min_price", 0)
	req.MaxPrice = c.QueryFloat("max_price", 0)
	req.Bedrooms = c.Query("bedrooms")
	req.Category = c.Query("category")
	req.Language = c.Query("language")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	lang := req.Language
	if lang == "" {
		lang = h.favoritesUC.Language(c.Context(), visitorFrom(c))
	}

	listings := h.catalogUC.Listings()
	criteria := domain.FilterCriteria{
		Text:     req.Text,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Bedrooms: req.Bedrooms,
		Category: req.Category,
	}
	filtered := domain.FilterListings(listings, criteria)

	result := dto.ListingCollectionResponse{
		Listings: dto.NewListingViews(filtered, lang, h.uploadsPath),
		Counts:   domain.CountByCategory(listings),
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(filtered)})
}

// Get godoc
// @Summary Get a single listing
// @Description Returns one listing by id. The collection is re-fetched from the backend first so the detail view is never stale; when the backend is unreachable the cached snapshot answers instead.
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param language query string false "Display language (en, am, ti)"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidListingID)
	}

	listing, err := h.catalogUC.Lookup(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	lang := c.Query("language")
	if lang == "" {
		lang = h.favoritesUC.Language(c.Context(), visitorFrom(c))
	}

	return utils.SendSuccess(c, dto.NewListingView(*listing, lang, h.uploadsPath), nil)
}

// Refresh godoc
// @Summary Force a catalog refresh
// @Description Fetches the collection from the backend immediately instead of waiting for the next poll. The snapshot is only replaced when its content actually changed.
// @Tags Listings
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings/refresh [post]
func (h *ListingHandler) Refresh(c *fiber.Ctx) error {
	if err := h.catalogUC.Refresh(c.Context(), false); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"refreshed": true}, &utils.Meta{
		Total: len(h.catalogUC.Listings()),
	})
}
