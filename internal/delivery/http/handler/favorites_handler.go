package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/utils"
	"github.com/listing-microservice/internal/pkg/validator"
	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/usecase/dto"
)

// FavoritesHandler serves per-visitor state: saved listings and the language
// preference.
type FavoritesHandler struct {
	favoritesUC *usecase.FavoritesUseCase
	logger      *zap.Logger
}

func NewFavoritesHandler(
	favoritesUC *usecase.FavoritesUseCase,
	logger *zap.Logger,
) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUC: favoritesUC,
		logger:      logger,
	}
}

// Toggle godoc
// @Summary Toggle a favorite
// @Description Flips the favorite state of a listing for the calling visitor and reports the resulting state.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{id}/toggle [post]
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidListingID)
	}

	added, err := h.favoritesUC.Toggle(c.Context(), visitorFrom(c), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id, "favorite": added}, nil)
}

// List godoc
// @Summary List favorites
// @Description Returns the visitor's saved listing ids in the order they were added.
// @Tags Favorites
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]int}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	favorites, err := h.favoritesUC.List(c.Context(), visitorFrom(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, favorites, &utils.Meta{Total: len(favorites)})
}

// SetLanguage godoc
// @Summary Set the display language
// @Description Stores the visitor's language preference. Subsequent pages and listing views for this visitor render in that language; other visitors are unaffected.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body dto.LanguageRequest true "Language"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/preferences/language [put]
func (h *FavoritesHandler) SetLanguage(c *fiber.Ctx) error {
	var req dto.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	if err := h.favoritesUC.SetLanguage(c.Context(), visitorFrom(c), req.Language); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"language": req.Language}, nil)
}
