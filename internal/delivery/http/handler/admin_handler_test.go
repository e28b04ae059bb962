package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/delivery/http/middleware"
	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/notify"
	"github.com/listing-microservice/internal/pkg/progress"
	"github.com/listing-microservice/internal/usecase"
)

type stubBackend struct{}

func (b *stubBackend) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	return nil, nil
}

func (b *stubBackend) CreateListing(ctx context.Context, form repository.ListingForm) (*domain.Listing, error) {
	return &domain.Listing{
		ID:        1,
		Title:     form.Fields["title"],
		TitleJSON: map[string]string{"en": "House", "am": "ቤት"},
	}, nil
}

func (b *stubBackend) UpdateListing(ctx context.Context, id int, form repository.ListingForm) (*domain.Listing, error) {
	return &domain.Listing{ID: id, Title: form.Fields["title"]}, nil
}

func (b *stubBackend) DeleteListing(ctx context.Context, id int) error { return nil }

func (b *stubBackend) FetchBrokerRequests(ctx context.Context) ([]domain.BrokerRequest, error) {
	return nil, nil
}

func (b *stubBackend) DecideBrokerRequest(ctx context.Context, id int, action, note string) error {
	return nil
}

type mapCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.values[key]
	if !ok {
		return nil, nil
	}
	return val, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *mapCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok, nil
}

func newAdminApp(t *testing.T) (*fiber.App, *usecase.FavoritesUseCase) {
	t.Helper()
	log := zap.NewNop()
	backend := &stubBackend{}
	catalogUC := usecase.NewCatalogUseCase(backend, progress.NewIndicator(), "noimage.png", log)
	adminUC := usecase.NewAdminUseCase(backend, catalogUC, notify.NewCenter(log), progress.NewIndicator(), log)
	favoritesUC := usecase.NewFavoritesUseCase(&mapCache{values: map[string][]byte{}}, notify.NewCenter(log), "en", []string{"en", "am", "ti"}, log)

	h := NewAdminHandler(adminUC, favoritesUC, "/uploads", "noimage.png", log)

	app := fiber.New()
	app.Use(middleware.Visitor())
	app.Post("/api/v1/listings", h.Create)
	return app, favoritesUC
}

func listingForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "House"))
	require.NoError(t, w.WriteField("price", "5000"))
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAdminCreateResponseLanguage(t *testing.T) {
	type envelope struct {
		Data struct {
			Title string `json:"title"`
		} `json:"data"`
	}

	t.Run("falls back to the visitor's stored preference", func(t *testing.T) {
		app, favoritesUC := newAdminApp(t)

		visitor := uuid.NewString()
		require.NoError(t, favoritesUC.SetLanguage(context.Background(), visitor, "am"))

		body, contentType := listingForm(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/listings", body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(&http.Cookie{Name: "visitor_id", Value: visitor})

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "ቤት", got.Data.Title)
	})

	t.Run("explicit language query wins over the preference", func(t *testing.T) {
		app, favoritesUC := newAdminApp(t)

		visitor := uuid.NewString()
		require.NoError(t, favoritesUC.SetLanguage(context.Background(), visitor, "am"))

		body, contentType := listingForm(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/listings?language=en", body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(&http.Cookie{Name: "visitor_id", Value: visitor})

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "House", got.Data.Title)
	})
}
