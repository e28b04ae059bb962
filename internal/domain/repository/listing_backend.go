package repository

import (
	"context"

	"github.com/listing-microservice/internal/domain"
)

// FormFile is one uploaded image travelling with a listing submission.
type FormFile struct {
	Name    string
	Content []byte
}

// ListingForm is the multipart payload for create and update submissions.
// Field validation happens in the delivery layer before the form reaches the
// backend.
type ListingForm struct {
	Fields map[string]string
	Images []FormFile
}

// ListingBackend defines the REST contract of the listings backend. This
// service consumes it; it never owns the data.
type ListingBackend interface {
	// FetchListings returns the full listing collection.
	FetchListings(ctx context.Context) ([]domain.Listing, error)

	// CreateListing submits a new listing as a multipart form.
	CreateListing(ctx context.Context, form ListingForm) (*domain.Listing, error)

	// UpdateListing replaces an existing listing.
	UpdateListing(ctx context.Context, id int, form ListingForm) (*domain.Listing, error)

	// DeleteListing removes a listing. A well-formed response with
	// success=false is reported as an error.
	DeleteListing(ctx context.Context, id int) error

	// FetchBrokerRequests returns the pending submission queue.
	FetchBrokerRequests(ctx context.Context) ([]domain.BrokerRequest, error)

	// DecideBrokerRequest approves or rejects a submission, with an optional
	// note on rejection.
	DecideBrokerRequest(ctx context.Context, id int, action, note string) error
}
