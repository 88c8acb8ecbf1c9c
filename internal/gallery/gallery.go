// Package gallery is a small HTTP client for the gallery server API,
// used by the command line tool.
package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"photoGallery/internal/models"
)

// ErrNotFound is returned when the server answers 404 for an album.
var ErrNotFound = errors.New("album not found")

// Client talks to a running gallery server.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8082".
func New(baseURL string) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

func (c *Client) resolve(pathSegments ...string) string {
	return c.baseURL.JoinPath(pathSegments...).String()
}

// apiError mirrors the server's error response body.
type apiError struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (c *Client) checkStatus(resp *http.Response, want ...int) error {
	for _, code := range want {
		if resp.StatusCode == code {
			return nil
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	body, _ := io.ReadAll(resp.Body)

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
	}

	return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
}

func doJSON[T any](ctx context.Context, c *Client, method, endpoint string, reqBody any, want ...int) (*T, error) {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, want...); err != nil {
		return nil, err
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &result, nil
}

// ListAlbums returns all albums known to the server.
func (c *Client) ListAlbums(ctx context.Context) ([]models.Album, error) {
	albums, err := doJSON[[]models.Album](ctx, c, http.MethodGet, c.resolve("api", "albums"), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *albums, nil
}

// GetAlbum fetches a single album by id.
func (c *Client) GetAlbum(ctx context.Context, id string) (*models.Album, error) {
	return doJSON[models.Album](ctx, c, http.MethodGet, c.resolve("api", "albums", id), nil, http.StatusOK)
}

// CreateAlbum creates an empty album with the given display name.
func (c *Client) CreateAlbum(ctx context.Context, name string) (*models.Album, error) {
	body := map[string]string{"name": name}
	return doJSON[models.Album](ctx, c, http.MethodPost, c.resolve("api", "albums"), body, http.StatusCreated)
}

// RenameAlbum changes an album's display name.
func (c *Client) RenameAlbum(ctx context.Context, id, name string) (*models.Album, error) {
	body := map[string]string{"name": name}
	return doJSON[models.Album](ctx, c, http.MethodPut, c.resolve("api", "albums", id), body, http.StatusOK)
}

// DeleteAlbum removes an album together with its files.
func (c *Client) DeleteAlbum(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.resolve("api", "albums", id), nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp, http.StatusOK)
}

// UploadPart is a single file in an upload batch. Name may carry a
// "light/" or "max/" folder prefix to mark the variant.
type UploadPart struct {
	Name string
	Path string
}

// UploadResult reports what the server accepted and what it skipped.
type UploadResult struct {
	Message string         `json:"message"`
	Album   *models.Album  `json:"album,omitempty"`
	Photos  []models.Photo `json:"photos,omitempty"`
	Skipped []string       `json:"skipped,omitempty"`
}

func buildMultipart(parts []UploadPart, fields map[string]string) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("could not write field %s: %w", key, err)
		}
	}

	for _, p := range parts {
		file, err := os.Open(p.Path)
		if err != nil {
			return nil, "", fmt.Errorf("could not open file %s: %w", p.Path, err)
		}

		part, err := writer.CreateFormFile("photos", p.Name)
		if err != nil {
			file.Close()
			return nil, "", fmt.Errorf("could not create form file: %w", err)
		}

		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return nil, "", fmt.Errorf("could not copy file data: %w", err)
		}
		file.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("could not close writer: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}

func (c *Client) postMultipart(ctx context.Context, endpoint string, parts []UploadPart, fields map[string]string) (*UploadResult, error) {
	body, contentType, err := buildMultipart(parts, fields)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &result, nil
}

// UploadPhotos adds a batch of files to an existing album.
func (c *Client) UploadPhotos(ctx context.Context, albumID string, parts []UploadPart) (*UploadResult, error) {
	return c.postMultipart(ctx, c.resolve("api", "albums", albumID, "photos"), parts, nil)
}

// BulkUpload sends files to the named album, creating it when missing.
func (c *Client) BulkUpload(ctx context.Context, albumName string, parts []UploadPart) (*UploadResult, error) {
	return c.postMultipart(ctx, c.resolve("api", "upload"), parts, map[string]string{"albumName": albumName})
}

// DownloadAlbum streams the album's ZIP archive into w and returns the
// filename suggested by the server.
func (c *Client) DownloadAlbum(ctx context.Context, id string, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve("api", "albums", id, "download"), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, http.StatusOK); err != nil {
		return "", err
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("could not read archive: %w", err)
	}

	return filenameFromDisposition(resp.Header.Get("Content-Disposition")), nil
}

func filenameFromDisposition(header string) string {
	const marker = `filename="`
	idx := strings.Index(header, marker)
	if idx < 0 {
		return "photos.zip"
	}
	rest := header[idx+len(marker):]
	if end := strings.Index(rest, `"`); end >= 0 {
		return rest[:end]
	}
	return "photos.zip"
}
