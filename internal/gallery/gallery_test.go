package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/models"
)

func TestClient_GetAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/albums/abc", r.URL.Path)

		json.NewEncoder(w).Encode(models.Album{ID: "abc", Name: "Wedding"})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	album, err := client.GetAlbum(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "Wedding", album.Name)
}

func TestClient_GetAlbum_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"status": "Error", "error": "album not found"})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	_, err = client.GetAlbum(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CreateAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Trip", body["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Album{ID: "new-id", Name: body["name"]})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	album, err := client.CreateAlbum(context.Background(), "Trip")
	require.NoError(t, err)
	require.Equal(t, "new-id", album.ID)
}

func TestClient_UploadPhotos(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake image data"), 0644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/albums/abc/photos", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		files := r.MultipartForm.File["photos"]
		require.Len(t, files, 1)
		// The parsed Filename is base-stripped; the folder prefix must
		// still be on the wire for the server to classify the variant.
		require.Contains(t, files[0].Header.Get("Content-Disposition"), `filename="light/photo.jpg"`)
		require.Equal(t, "photo.jpg", files[0].Filename)

		json.NewEncoder(w).Encode(UploadResult{Message: "photos added"})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	res, err := client.UploadPhotos(context.Background(), "abc", []UploadPart{
		{Name: "light/photo.jpg", Path: path},
	})
	require.NoError(t, err)
	require.Equal(t, "photos added", res.Message)
}

func TestClient_DownloadAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="Wedding.zip"`)
		w.Write([]byte("zip bytes"))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	var buf bytes.Buffer
	name, err := client.DownloadAlbum(context.Background(), "abc", &buf)
	require.NoError(t, err)
	require.Equal(t, "Wedding.zip", name)
	require.Equal(t, "zip bytes", buf.String())
}
