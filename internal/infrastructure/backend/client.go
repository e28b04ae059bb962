package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/listing-microservice/internal/config"
	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

// imagesField is the multipart field name the backend expects uploads under.
const imagesField = "images"

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the REST client for the listings backend.
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.ListingBackend {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// FetchListings returns the full listing collection.
func (c *client) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	url := fmt.Sprintf("%s/api/houses", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch listings", zap.Error(err))
		return nil, errors.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Backend returned error on listing fetch",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrBackendRejected
	}

	var listings []domain.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		c.logger.Error("Failed to decode listing collection", zap.Error(err))
		return nil, errors.ErrBackendBadPayload
	}

	c.logger.Debug("Fetched listings", zap.Int("count", len(listings)))
	return listings, nil
}

// CreateListing submits a new listing as a multipart form.
func (c *client) CreateListing(ctx context.Context, form repository.ListingForm) (*domain.Listing, error) {
	url := fmt.Sprintf("%s/api/houses", c.baseURL)
	return c.submitForm(ctx, http.MethodPost, url, form)
}

// UpdateListing replaces an existing listing.
func (c *client) UpdateListing(ctx context.Context, id int, form repository.ListingForm) (*domain.Listing, error) {
	url := fmt.Sprintf("%s/api/houses/%d", c.baseURL, id)
	return c.submitForm(ctx, http.MethodPut, url, form)
}

func (c *client) submitForm(ctx context.Context, method, url string, form repository.ListingForm) (*domain.Listing, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", name, err)
		}
	}
	for _, img := range form.Images {
		part, err := writer.CreateFormFile(imagesField, img.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(img.Content); err != nil {
			return nil, fmt.Errorf("failed to write form file: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to submit listing form",
			zap.String("method", method),
			zap.Error(err))
		return nil, errors.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.rejectionError(resp)
	}

	var listing domain.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		c.logger.Error("Failed to decode listing response", zap.Error(err))
		return nil, errors.ErrBackendBadPayload
	}

	return &listing, nil
}

// DeleteListing removes a listing. The backend answers {success:bool}; a
// success=false answer is reported as a rejection.
func (c *client) DeleteListing(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/api/houses/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to delete listing", zap.Int("id", id), zap.Error(err))
		return errors.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejectionError(resp)
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode delete response", zap.Error(err))
		return errors.ErrBackendBadPayload
	}
	if !result.Success {
		c.logger.Warn("Backend refused to delete listing", zap.Int("id", id))
		return errors.ErrBackendRejected.WithMessage("Failed to delete listing")
	}

	return nil
}

// FetchBrokerRequests returns the pending submission queue.
func (c *client) FetchBrokerRequests(ctx context.Context) ([]domain.BrokerRequest, error) {
	url := fmt.Sprintf("%s/api/admin/broker-requests", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch broker requests", zap.Error(err))
		return nil, errors.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.rejectionError(resp)
	}

	var requests []domain.BrokerRequest
	if err := json.NewDecoder(resp.Body).Decode(&requests); err != nil {
		c.logger.Error("Failed to decode broker requests", zap.Error(err))
		return nil, errors.ErrBackendBadPayload
	}

	return requests, nil
}

// DecideBrokerRequest approves or rejects a submission.
func (c *client) DecideBrokerRequest(ctx context.Context, id int, action, note string) error {
	url := fmt.Sprintf("%s/api/admin/broker-requests/%d/decision", c.baseURL, id)

	payload, err := json.Marshal(map[string]string{
		"action": action,
		"note":   note,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal decision: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to submit decision",
			zap.Int("id", id),
			zap.String("action", action),
			zap.Error(err))
		return errors.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejectionError(resp)
	}

	return nil
}

// rejectionError extracts the backend's {error} message when present so the
// user-facing notification can carry it.
func (c *client) rejectionError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		c.logger.Warn("Backend rejected request",
			zap.Int("status_code", resp.StatusCode),
			zap.String("error", payload.Error))
		return errors.ErrBackendRejected.WithMessage(payload.Error)
	}

	c.logger.Warn("Backend rejected request",
		zap.Int("status_code", resp.StatusCode),
		zap.String("body", string(body)))
	return errors.ErrBackendRejected
}
