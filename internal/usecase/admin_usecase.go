package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/listing-microservice/internal/pkg/notify"
	"github.com/listing-microservice/internal/pkg/progress"
)

// AdminUseCase issues create/update/delete requests and broker-request
// decisions against the backend. Successful mutations reconcile local state
// by triggering a silent catalog refresh; failures surface a notification
// and mutate nothing.
type AdminUseCase struct {
	backend   repository.ListingBackend
	catalog   *CatalogUseCase
	notifier  notify.Notifier
	indicator *progress.Indicator
	logger    *zap.Logger
}

func NewAdminUseCase(
	backend repository.ListingBackend,
	catalog *CatalogUseCase,
	notifier notify.Notifier,
	indicator *progress.Indicator,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		backend:   backend,
		catalog:   catalog,
		notifier:  notifier,
		indicator: indicator,
		logger:    logger,
	}
}

// CreateListing submits a new listing.
func (uc *AdminUseCase) CreateListing(ctx context.Context, form repository.ListingForm) (*domain.Listing, error) {
	uc.indicator.Begin()
	defer uc.indicator.End()

	created, err := uc.backend.CreateListing(ctx, form)
	if err != nil {
		uc.notifier.Notify("Error: " + messageFor(err, "Failed to add listing"))
		return nil, err
	}

	uc.notifier.Notify("Listing added successfully!")
	uc.resync(ctx)
	return created, nil
}

// UpdateListing replaces an existing listing.
func (uc *AdminUseCase) UpdateListing(ctx context.Context, id int, form repository.ListingForm) (*domain.Listing, error) {
	uc.indicator.Begin()
	defer uc.indicator.End()

	updated, err := uc.backend.UpdateListing(ctx, id, form)
	if err != nil {
		uc.notifier.Notify("Error: " + messageFor(err, "Failed to update listing"))
		return nil, err
	}

	uc.notifier.Notify("Listing updated successfully!")
	uc.resync(ctx)
	return updated, nil
}

// DeleteListing removes a listing. The caller must pass an explicit
// confirmation result; without it the request never reaches the backend.
func (uc *AdminUseCase) DeleteListing(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return errors.ErrConfirmationRequired
	}

	if err := uc.backend.DeleteListing(ctx, id); err != nil {
		uc.notifier.Notify(messageFor(err, "Failed to delete listing."))
		return err
	}

	uc.notifier.Notify("Listing deleted!")
	uc.resync(ctx)
	return nil
}

// BrokerRequests returns the submission queue, always fetched on demand.
func (uc *AdminUseCase) BrokerRequests(ctx context.Context) ([]domain.BrokerRequest, error) {
	return uc.backend.FetchBrokerRequests(ctx)
}

// DecideBrokerRequest approves or rejects a submission. Approval publishes
// the request as a listing on the backend, so the catalog is resynced;
// rejection is terminal and only concerns the request queue.
func (uc *AdminUseCase) DecideBrokerRequest(ctx context.Context, id int, action, note string) error {
	if !domain.ValidDecision(action) {
		return errors.ErrInvalidDecision
	}

	if err := uc.backend.DecideBrokerRequest(ctx, id, action, note); err != nil {
		uc.notifier.Notify(messageFor(err, "Failed to update request."))
		return err
	}

	if action == domain.DecisionApprove {
		uc.notifier.Notify("Broker request approved and published.")
		uc.resync(ctx)
	} else {
		uc.notifier.Notify("Broker request rejected.")
	}
	return nil
}

// resync reconciles local state after a successful mutation. Errors degrade
// silently; the next poll will catch up.
func (uc *AdminUseCase) resync(ctx context.Context) {
	if err := uc.catalog.Refresh(ctx, true); err != nil {
		uc.logger.Debug("Post-mutation refresh failed", zap.Error(err))
	}
}

// messageFor prefers the backend-provided error message over the generic
// fallback.
func messageFor(err error, fallback string) string {
	if appErr, ok := err.(*errors.AppError); ok && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
