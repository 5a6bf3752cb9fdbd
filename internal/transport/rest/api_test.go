package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecomshop/catalog/internal/product"
	"github.com/ecomshop/catalog/internal/service"
	"github.com/ecomshop/catalog/internal/store"
	"github.com/ecomshop/catalog/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the real service on top of the in-memory store, so
// requests travel the whole path: router, handler, service, validation, store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	mux := server.NewChiRouter(testLogger())
	handler := NewHandler(service.NewService(store.NewMemStore()), &mockUploader{url: "https://img.example.com/bucket/products/x.png"}, testLogger())
	handler.RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeProduct(t *testing.T, body string) product.Product {
	t.Helper()
	var p product.Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func decodeList(t *testing.T, body string) []product.Product {
	t.Helper()
	var list []product.Product
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	return list
}

func Test_API_CreateThenFetchRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/products",
		`{"name":"Widget","description":"A widget","price":9.99}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeProduct(t, rr.Body.String())
	assert.NotEmpty(t, created.ID)

	rr = doRequest(t, router, http.MethodGet, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decodeProduct(t, rr.Body.String())
	assert.Equal(t, created, fetched)

	rr = doRequest(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeList(t, rr.Body.String())
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func Test_API_InvalidCreateLeavesCatalogUnchanged(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/products",
		`{"name":"","description":"","price":-1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeList(t, rr.Body.String()))
}

func Test_API_PriceBoundaries(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/products",
		`{"name":"Freebie","description":"Costs nothing","price":0}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, float64(0), decodeProduct(t, rr.Body.String()).Price)

	rr = doRequest(t, router, http.MethodPost, "/products",
		`{"name":"Negative","description":"Invalid","price":-0.01}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Price cannot be negative."}`, rr.Body.String())
}

func Test_API_UpdateReplacesWholeRecord(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/products",
		`{"name":"Widget","description":"A widget","price":9.99,"image":"https://img.example.com/old.png"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeProduct(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodPut, "/products/"+created.ID,
		`{"name":"Gadget","description":"A gadget","price":19.99}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeProduct(t, rr.Body.String())
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Empty(t, updated.Image, "image not present in the replacement is gone")

	rr = doRequest(t, router, http.MethodGet, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, updated, decodeProduct(t, rr.Body.String()))
}

func Test_API_DeleteThenFetchReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/products",
		`{"name":"Widget","description":"A widget","price":9.99}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeProduct(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodDelete, "/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func Test_API_EmptyCatalogReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}
