package errors

import "net/http"

var (
	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrInvalidListingID = New(
		"INVALID_LISTING_ID",
		"Invalid listing ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDecision = New(
		"INVALID_DECISION",
		"Decision must be approve or reject",
		http.StatusBadRequest,
	)

	ErrUnsupportedLanguage = New(
		"UNSUPPORTED_LANGUAGE",
		"Language is not supported",
		http.StatusBadRequest,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"Destructive action requires explicit confirmation",
		http.StatusPreconditionRequired,
	)

	ErrBackendUnavailable = New(
		"BACKEND_UNAVAILABLE",
		"Listings backend is unreachable",
		http.StatusBadGateway,
	)

	ErrBackendRejected = New(
		"BACKEND_REJECTED",
		"Listings backend rejected the request",
		http.StatusBadGateway,
	)

	ErrBackendBadPayload = New(
		"BACKEND_BAD_PAYLOAD",
		"Listings backend returned an unexpected payload",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
