package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/listing-microservice/internal/config"
	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
	"github.com/listing-microservice/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) repository.ListingBackend {
	logger, _ := zap.NewDevelopment()
	return NewClient(&config.BackendConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5,
	}, logger)
}

func TestClient_FetchListings(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		listings := []domain.Listing{
			{ID: 1, Title: "Stone house", Price: 1250000, Type: "house"},
			{ID: 2, Title: "City flat", Price: 800000, Type: "apartment"},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/houses", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(listings)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		got, err := client.FetchListings(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Stone house", got[0].Title)
		assert.Equal(t, float64(800000), got[1].Price)
	})

	t.Run("quoted bedroom counts decode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"type":"house","bedrooms":"3"}]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		got, err := client.FetchListings(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got[0].Bedrooms)
		assert.Equal(t, 3, got[0].Bedrooms.Int())
	})

	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		got, err := client.FetchListings(context.Background())
		assert.Nil(t, got)
		assert.Equal(t, errors.ErrBackendRejected, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		got, err := client.FetchListings(context.Background())
		assert.Nil(t, got)
		assert.Equal(t, errors.ErrBackendBadPayload, err)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")
		got, err := client.FetchListings(context.Background())
		assert.Nil(t, got)
		assert.Equal(t, errors.ErrBackendUnavailable, err)
	})
}

func TestClient_CreateListing(t *testing.T) {
	t.Run("multipart submission", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Stone house", r.FormValue("title"))
			assert.Equal(t, "1250000", r.FormValue("price"))
			require.Len(t, r.MultipartForm.File["images"], 1)
			assert.Equal(t, "front.jpg", r.MultipartForm.File["images"][0].Filename)

			json.NewEncoder(w).Encode(domain.Listing{ID: 10, Title: "Stone house"})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		created, err := client.CreateListing(context.Background(), repository.ListingForm{
			Fields: map[string]string{"title": "Stone house", "price": "1250000"},
			Images: []repository.FormFile{{Name: "front.jpg", Content: []byte("jpegbytes")}},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
	})

	t.Run("backend error message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"price is required"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		created, err := client.CreateListing(context.Background(), repository.ListingForm{
			Fields: map[string]string{"title": "Stone house"},
		})
		assert.Nil(t, created)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "BACKEND_REJECTED", appErr.Code)
		assert.Equal(t, "price is required", appErr.Message)
	})
}

func TestClient_DeleteListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/houses/5", r.URL.Path)
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		assert.NoError(t, client.DeleteListing(context.Background(), 5))
	})

	t.Run("well-formed refusal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		err := client.DeleteListing(context.Background(), 5)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "BACKEND_REJECTED", appErr.Code)
	})
}

func TestClient_DecideBrokerRequest(t *testing.T) {
	t.Run("reject with note", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/admin/broker-requests/3/decision", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "reject", body["action"])
			assert.Equal(t, "missing photos", body["note"])

			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		assert.NoError(t, client.DecideBrokerRequest(context.Background(), 3, "reject", "missing photos"))
	})

	t.Run("rejection error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"request already decided"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		err := client.DecideBrokerRequest(context.Background(), 3, "approve", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request already decided")
	})
}

func TestClient_FetchBrokerRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/broker-requests", r.URL.Path)
		w.Write([]byte(`[{"id":1,"title":"Farm plot","status":"pending","broker_name":"Alem"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.FetchBrokerRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Farm plot", got[0].Title)
	assert.Equal(t, "Alem", got[0].BrokerName)
	assert.Equal(t, domain.RequestPending, got[0].Status)
}
