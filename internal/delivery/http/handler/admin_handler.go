package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/utils"
	"github.com/listing-microservice/internal/pkg/validator"
	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/usecase/dto"
)

const imagesField = "images"

// AdminHandler proxies listing mutations and broker-request decisions to the
// backend.
type AdminHandler struct {
	adminUC     *usecase.AdminUseCase
	favoritesUC *usecase.FavoritesUseCase
	uploadsPath string
	placeholder string
	logger      *zap.Logger
}

func NewAdminHandler(
	adminUC *usecase.AdminUseCase,
	favoritesUC *usecase.FavoritesUseCase,
	uploadsPath, placeholder string,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminUC:     adminUC,
		favoritesUC: favoritesUC,
		uploadsPath: uploadsPath,
		placeholder: placeholder,
		logger:      logger,
	}
}

// language resolves the response language: the explicit query parameter wins,
// otherwise the visitor's stored preference (same rule as the public
// listing endpoints).
func (h *AdminHandler) language(c *fiber.Ctx) string {
	if lang := c.Query("language"); lang != "" {
		return lang
	}
	return h.favoritesUC.Language(c.Context(), visitorFrom(c))
}

// Create godoc
// @Summary Create a listing
// @Description Forwards the multipart listing form to the backend. On success the catalog is resynced silently.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Listing title"
// @Param price formData string true "Price in Birr"
// @Param description formData string false "Description"
// @Param type formData string false "Listing type"
// @Param images formData file false "Listing images"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	form, err := h.parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	created, err := h.adminUC.CreateListing(c.Context(), form)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewListingView(created.Normalize(h.placeholder), h.language(c), h.uploadsPath), nil)
}

// Update godoc
// @Summary Update a listing
// @Description Forwards the multipart listing form to the backend as a replacement for the given id.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListingView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidListingID)
	}

	form, err := h.parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	updated, err := h.adminUC.UpdateListing(c.Context(), id, form)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewListingView(updated.Normalize(h.placeholder), h.language(c), h.uploadsPath), nil)
}

// Delete godoc
// @Summary Delete a listing
// @Description Deletes a listing on the backend. The request must carry confirm=true; without it nothing is deleted and 428 is returned, so clients can show their confirmation dialog first.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param confirm query bool false "Explicit confirmation" default(false)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 428 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidListingID)
	}

	confirmed := c.QueryBool("confirm", false)
	if err := h.adminUC.DeleteListing(c.Context(), id, confirmed); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// BrokerRequests godoc
// @Summary List broker requests
// @Description Returns the broker submission queue, fetched fresh from the backend on every call.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BrokerRequestView}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/broker-requests [get]
func (h *AdminHandler) BrokerRequests(c *fiber.Ctx) error {
	requests, err := h.adminUC.BrokerRequests(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	views := dto.NewBrokerRequestViews(requests, h.uploadsPath)
	return utils.SendSuccess(c, views, &utils.Meta{Total: len(views)})
}

// Decide godoc
// @Summary Decide a broker request
// @Description Approves or rejects a broker submission. Approval publishes it as a listing and resyncs the catalog; rejection may carry an optional note for the broker.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/broker-requests/{id}/decision [post]
func (h *AdminHandler) Decide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidDecision)
	}

	if err := h.adminUC.DecideBrokerRequest(c.Context(), id, req.Action, req.Note); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"decided": req.Action}, nil)
}

// parseForm validates the multipart listing form and converts it to the
// backend submission shape.
func (h *AdminHandler) parseForm(c *fiber.Ctx) (repository.ListingForm, error) {
	var req dto.ListingFormRequest
	if err := c.BodyParser(&req); err != nil {
		return repository.ListingForm{}, errors.ErrInvalidRequest
	}
	if err := validator.Validate(&req); err != nil {
		return repository.ListingForm{}, errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	form := repository.ListingForm{Fields: req.Fields()}

	mf, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all; fields alone are a valid submission.
		return form, nil
	}
	for _, header := range mf.File[imagesField] {
		content, err := readUpload(header)
		if err != nil {
			h.logger.Warn("Skipping unreadable upload",
				zap.String("file", header.Filename), zap.Error(err))
			continue
		}
		form.Images = append(form.Images, repository.FormFile{
			Name:    header.Filename,
			Content: content,
		})
	}
	return form, nil
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
