package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecomshop/catalog/internal/app"
	apperrors "github.com/ecomshop/catalog/internal/errors"
	"github.com/ecomshop/catalog/internal/product"
	"github.com/ecomshop/catalog/internal/service"
	"github.com/ecomshop/catalog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUploader stands in for the remote image host.
type stubUploader struct {
	url   string
	error error
}

func (s *stubUploader) Upload(_ context.Context, _ string, r io.Reader) (string, error) {
	_, _ = io.ReadAll(r)
	if s.error != nil {
		return "", s.error
	}
	return s.url, nil
}

// newTestServer runs the full API handler over the in-memory store.
func newTestServer(t *testing.T, uploader *stubUploader) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	deps := &app.Dependencies{
		ProductService: service.NewService(store.NewMemStore()),
		Uploader:       uploader,
		Logger:         logger,
	}
	server := httptest.NewServer(app.SetupHttpHandler(deps))
	t.Cleanup(server.Close)
	return server
}

func floatPtr(f float64) *float64 { return &f }

func Test_Client_CRUDRoundTrip(t *testing.T) {
	server := newTestServer(t, &stubUploader{})
	client := NewClient(server.URL)
	ctx := context.Background()

	// Empty catalog to start with.
	list, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Create and read back.
	created, err := client.Create(ctx, product.Input{
		Name:        "Widget",
		Description: "A widget",
		Price:       floatPtr(9.99),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := client.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	// Full replace.
	updated, err := client.Update(ctx, created.ID, product.Input{
		Name:        "Gadget",
		Description: "A gadget",
		Price:       floatPtr(19.99),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)

	// Delete, then the id is gone for good.
	require.NoError(t, client.Delete(ctx, created.ID))

	_, err = client.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	err = client.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func Test_Client_CreateCarriesServerMessages(t *testing.T) {
	server := newTestServer(t, &stubUploader{})
	client := NewClient(server.URL)

	_, err := client.Create(context.Background(), product.Input{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please provide a name for this product.")
	assert.Contains(t, err.Error(), "Please provide a description for this product.")
	assert.Contains(t, err.Error(), "Please provide a price for this product.")
}

func Test_Client_GetInvalidID(t *testing.T) {
	server := newTestServer(t, &stubUploader{})
	client := NewClient(server.URL)

	_, err := client.Get(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid ID: not-a-uuid")
}

func Test_Client_UploadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := newTestServer(t, &stubUploader{url: "https://img.example.com/bucket/products/p.png"})
		client := NewClient(server.URL)

		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

		url, err := client.UploadImage(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/bucket/products/p.png", url)
	})

	t.Run("Error - local file missing", func(t *testing.T) {
		server := newTestServer(t, &stubUploader{})
		client := NewClient(server.URL)

		_, err := client.UploadImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))

		assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
	})

	t.Run("Error - remote host failure carries message", func(t *testing.T) {
		server := newTestServer(t, &stubUploader{error: assert.AnError})
		client := NewClient(server.URL)

		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

		_, err := client.UploadImage(context.Background(), path)

		require.ErrorIs(t, err, apperrors.ErrUploadFailed)
		assert.Contains(t, err.Error(), "Failed to upload image")
	})
}

func Test_Client_TrimsTrailingSlash(t *testing.T) {
	server := newTestServer(t, &stubUploader{})
	client := NewClient(server.URL + "/")

	_, err := client.List(context.Background())
	assert.NoError(t, err)
}

func Test_Client_ServerUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "request failed")

	_, err = client.UploadImage(context.Background(), "also-missing.png")
	assert.ErrorIs(t, err, apperrors.ErrUploadFailed)
}

func Test_Client_HealthEndpoint(t *testing.T) {
	server := newTestServer(t, &stubUploader{})

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
