// Package cli implements the admin-facing client of the catalog API: a typed
// HTTP client, a form controller that orchestrates upload-then-save, and the
// list/detail views.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/ecomshop/catalog/internal/errors"
	"github.com/ecomshop/catalog/internal/product"
)

// Client is a typed HTTP client for the catalog API. Server-reported messages
// are carried back verbatim so the caller can surface them to the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// errorResponse is the API's error envelope for product routes.
type errorResponse struct {
	Error string `json:"error"`
}

// uploadResponse mirrors the upload endpoint's envelope.
type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}

// List fetches all products.
func (c *Client) List(ctx context.Context) ([]product.Product, error) {
	var list []product.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, http.StatusOK, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get fetches one product by id. Returns ErrProductNotFound when the id has
// no current record.
func (c *Client) Get(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, http.StatusOK, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create saves a new product and returns it with the store-assigned id.
func (c *Client) Create(ctx context.Context, in product.Input) (*product.Product, error) {
	var p product.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", in, http.StatusCreated, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the product with the given id.
func (c *Client) Update(ctx context.Context, id string, in product.Input) (*product.Product, error) {
	var p product.Product
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+id, in, http.StatusOK, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the product with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, http.StatusOK, nil)
}

// UploadImage sends one local file to the upload endpoint and returns the
// public URL of the stored image.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer func() { _ = f.Close() }()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-image", &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("%w: unexpected response: %v", apperrors.ErrUploadFailed, err)
	}
	if resp.StatusCode != http.StatusOK || !ur.Success {
		msg := ur.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("%w: %s", apperrors.ErrUploadFailed, msg)
	}
	return ur.ImageURL, nil
}

// doJSON performs one request with an optional JSON body and decodes the
// response into out when the status matches wantStatus. Other statuses are
// turned into errors carrying the server's message.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		if resp.StatusCode == http.StatusNotFound {
			return apperrors.ErrProductNotFound
		}
		if er.Error != "" {
			return fmt.Errorf("%s", er.Error)
		}
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
