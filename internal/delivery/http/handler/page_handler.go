package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/notify"
	"github.com/listing-microservice/internal/pkg/utils"
	"github.com/listing-microservice/internal/pkg/validator"
	"github.com/listing-microservice/internal/renderer"
	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/usecase/dto"
)

// PageHandler serves the rendered HTML pages and the view-state endpoints
// backing them.
type PageHandler struct {
	viewUC      *usecase.ViewUseCase
	catalogUC   *usecase.CatalogUseCase
	adminUC     *usecase.AdminUseCase
	favoritesUC *usecase.FavoritesUseCase
	rend        renderer.Renderer
	center      *notify.Center
	uploadsPath string
	logger      *zap.Logger
}

func NewPageHandler(
	viewUC *usecase.ViewUseCase,
	catalogUC *usecase.CatalogUseCase,
	adminUC *usecase.AdminUseCase,
	favoritesUC *usecase.FavoritesUseCase,
	rend renderer.Renderer,
	center *notify.Center,
	uploadsPath string,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		viewUC:      viewUC,
		catalogUC:   catalogUC,
		adminUC:     adminUC,
		favoritesUC: favoritesUC,
		rend:        rend,
		center:      center,
		uploadsPath: uploadsPath,
		logger:      logger,
	}
}

// Index serves the cached listing page in the visitor's language. Pages are
// pre-rendered per language on every catalog change or filter update, so this
// path does no work beyond returning the string.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	lang := h.favoritesUC.Language(c.Context(), visitorFrom(c))
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(h.viewUC.Page(lang))
}

// ListingDetail serves one listing as a rendered detail fragment, fetched
// fresh from the backend.
func (h *PageHandler) ListingDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidListingID)
	}

	listing, err := h.catalogUC.Lookup(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	lang := h.favoritesUC.Language(c.Context(), visitorFrom(c))
	view := dto.NewListingView(*listing, lang, h.uploadsPath)

	html, err := h.rend.ListingDetail(view)
	if err != nil {
		h.logger.Error("Failed to render listing detail", zap.Int("id", id), zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// BrokerRequestsPage serves the broker submission queue as rendered cards.
func (h *PageHandler) BrokerRequestsPage(c *fiber.Ctx) error {
	requests, err := h.adminUC.BrokerRequests(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	html, err := h.rend.BrokerRequestList(dto.NewBrokerRequestViews(requests, h.uploadsPath))
	if err != nil {
		h.logger.Error("Failed to render broker requests", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// SetFilters godoc
// @Summary Set the page filters
// @Description Installs new filter criteria for the rendered listing page and redraws it over the current snapshot.
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.ListingFilterRequest true "Filter criteria"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/view/filters [put]
func (h *PageHandler) SetFilters(c *fiber.Ctx) error {
	var req dto.ListingFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	h.viewUC.SetCriteria(domain.FilterCriteria{
		Text:     req.Text,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Bedrooms: req.Bedrooms,
		Category: req.Category,
	})

	return utils.SendSuccess(c, fiber.Map{"applied": true}, nil)
}

// Notifications godoc
// @Summary Recent notifications
// @Description Returns the recent transient notifications, oldest first, for polling clients.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]notify.Notification}
// @Router /api/v1/notifications [get]
func (h *PageHandler) Notifications(c *fiber.Ctx) error {
	recent := h.center.Recent()
	return utils.SendSuccess(c, recent, &utils.Meta{Total: len(recent)})
}
