package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/archive"
	"photoGallery/internal/models"
)

func newBuilder(t *testing.T, uploadsRoot string) *archive.Builder {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return archive.New(log, uploadsRoot, "Studio", "web", "print", 5)
}

func writeAlbumFile(t *testing.T, root string, parts ...string) {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte("content of "+filepath.Base(path)), 0o644))
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(content)
	}

	return entries
}

func topLevelFolders(entries map[string]string) []string {
	seen := map[string]bool{}
	for name := range entries {
		if i := strings.Index(name, "/"); i > 0 {
			seen[name[:i]] = true
		}
	}

	folders := make([]string, 0, len(seen))
	for f := range seen {
		folders = append(folders, f)
	}
	sort.Strings(folders)

	return folders
}

func TestBuildFlatAlbum(t *testing.T) {
	root := t.TempDir()
	album := models.Album{ID: "a1", Name: "Wedding"}

	writeAlbumFile(t, root, "a1", "first.jpg")
	writeAlbumFile(t, root, "a1", "second.jpg")

	var buf bytes.Buffer
	require.NoError(t, newBuilder(t, root).Build(&buf, []models.Album{album}))

	entries := readZip(t, buf.Bytes())
	require.Len(t, entries, 2)
	require.Equal(t, "content of first.jpg", entries["Studio Wedding/first.jpg"])
	require.Equal(t, "content of second.jpg", entries["Studio Wedding/second.jpg"])
	require.Equal(t, []string{"Studio Wedding"}, topLevelFolders(entries))
}

func TestBuildStructuredAlbum(t *testing.T) {
	root := t.TempDir()
	album := models.Album{ID: "a1", Name: "Shoot", HasLightMax: true}

	writeAlbumFile(t, root, "a1", "light", "a.jpg")
	writeAlbumFile(t, root, "a1", "light", "b.jpg")
	writeAlbumFile(t, root, "a1", "max", "a.jpg")
	writeAlbumFile(t, root, "a1", "max", "b.jpg")

	var buf bytes.Buffer
	require.NoError(t, newBuilder(t, root).Build(&buf, []models.Album{album}))

	entries := readZip(t, buf.Bytes())
	require.Len(t, entries, 4)
	require.Equal(t, []string{
		"Studio Shoot - Light - web",
		"Studio Shoot - Max - print",
	}, topLevelFolders(entries))
	require.Contains(t, entries, "Studio Shoot - Light - web/a.jpg")
	require.Contains(t, entries, "Studio Shoot - Max - print/b.jpg")
}

func TestBuildMultipleAlbums(t *testing.T) {
	root := t.TempDir()
	albums := []models.Album{
		{ID: "a1", Name: "One"},
		{ID: "a2", Name: "Two", HasLightMax: true},
	}

	writeAlbumFile(t, root, "a1", "x.jpg")
	writeAlbumFile(t, root, "a2", "light", "y.jpg")
	writeAlbumFile(t, root, "a2", "max", "y.jpg")

	var buf bytes.Buffer
	require.NoError(t, newBuilder(t, root).Build(&buf, albums))

	entries := readZip(t, buf.Bytes())
	require.Equal(t, []string{
		"Studio One",
		"Studio Two - Light - web",
		"Studio Two - Max - print",
	}, topLevelFolders(entries))
}

func TestBuildSkipsMissingDirectories(t *testing.T) {
	root := t.TempDir()
	albums := []models.Album{
		{ID: "gone", Name: "Gone"},
		{ID: "half", Name: "Half", HasLightMax: true},
	}

	// "half" only has its light directory on disk.
	writeAlbumFile(t, root, "half", "light", "a.jpg")

	var buf bytes.Buffer
	require.NoError(t, newBuilder(t, root).Build(&buf, albums))

	entries := readZip(t, buf.Bytes())
	require.Len(t, entries, 1)
	require.Contains(t, entries, "Studio Half - Light - web/a.jpg")
}

func TestFilename(t *testing.T) {
	b := newBuilder(t, t.TempDir())

	require.Equal(t, "Wedding.zip", b.Filename([]models.Album{{Name: "Wedding"}}))
	require.Equal(t, "photos.zip", b.Filename([]models.Album{{Name: "A"}, {Name: "B"}}))
}
