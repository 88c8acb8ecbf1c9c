package ingest_test

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/config"
	"photoGallery/internal/ingest"
	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/sanitize"
	"photoGallery/internal/storage/jsonstore"
	"photoGallery/internal/thumbnail"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type eventRecorder struct {
	events []producer.Event
}

func (r *eventRecorder) Publish(_ context.Context, e producer.Event) error {
	r.events = append(r.events, e)

	return nil
}

func (r *eventRecorder) Close() error { return nil }

type testEnv struct {
	store    *jsonstore.Storage
	pipeline *ingest.Pipeline
	events   *eventRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmp := t.TempDir()

	store, err := jsonstore.New(
		filepath.Join(tmp, "albums.json"),
		filepath.Join(tmp, "uploads", "albums"),
		filepath.Join(tmp, "uploads", "thumbnails"),
	)
	require.NoError(t, err)

	log := testLogger()
	thumbs := thumbnail.New(filepath.Join(tmp, "uploads", "thumbnails"), 400, 80)
	events := &eventRecorder{}

	pipeline := ingest.New(log, store, thumbs, events, config.Upload{
		MaxFileSize:  1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	})

	return &testEnv{store: store, pipeline: pipeline, events: events}
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{R: 40, G: 90, B: 160, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))

	return buf.Bytes()
}

func TestAppendToAlbumFlat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Wedding")
	require.NoError(t, err)

	files := []ingest.File{
		{RelPath: "a.jpg", Data: jpegBytes(t, 300, 200)},
		{RelPath: "b.jpg", Data: jpegBytes(t, 200, 300)},
		{RelPath: "c.jpg", Data: jpegBytes(t, 500, 500)},
	}

	result, err := env.pipeline.AppendToAlbum(ctx, album.ID, files)
	require.NoError(t, err)
	require.Len(t, result.Photos, 3)
	require.Empty(t, result.Skipped)
	require.False(t, result.Album.HasLightMax)

	first := result.Photos[0]
	require.Equal(t, "/uploads/albums/"+album.ID+"/a.jpg", first.Src)
	require.Equal(t, "/uploads/thumbnails/"+album.ID+"/a.jpg", first.Thumbnail)
	require.Equal(t, "a", first.Title)
	require.Equal(t, 300, first.Width)
	require.Equal(t, 200, first.Height)
	require.NotEmpty(t, first.ID)

	require.Equal(t, first.Thumbnail, result.Album.Thumbnail)

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		require.FileExists(t, filepath.Join(env.store.AlbumDir(album.ID), name))
		require.FileExists(t, filepath.Join(env.store.ThumbnailDir(album.ID), name))
	}

	require.Len(t, env.events.events, 1)
	require.Equal(t, producer.EventPhotosIngested, env.events.events[0].Type)
	require.Equal(t, 3, env.events.events[0].Photos)
}

func TestAppendToAlbumUnknownAlbum(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.pipeline.AppendToAlbum(context.Background(), "missing", []ingest.File{
		{RelPath: "a.jpg", Data: jpegBytes(t, 50, 50)},
	})
	require.ErrorIs(t, err, jsonstore.ErrAlbumNotFound)
}

func TestSkipAndContinue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Mixed")
	require.NoError(t, err)

	big := jpegBytes(t, 50, 50)
	big = append(big, make([]byte, 2<<20)...)

	files := []ingest.File{
		{RelPath: "good.jpg", Data: jpegBytes(t, 50, 50)},
		{RelPath: "notes.txt", Data: []byte("just some text")},
		{RelPath: "huge.jpg", Data: big},
	}

	result, err := env.pipeline.AppendToAlbum(ctx, album.ID, files)
	require.NoError(t, err)
	require.Len(t, result.Photos, 1)
	require.ElementsMatch(t, []string{"notes.txt", "huge.jpg"}, result.Skipped)
}

func TestNoValidFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Empty")
	require.NoError(t, err)

	_, err = env.pipeline.AppendToAlbum(ctx, album.ID, []ingest.File{
		{RelPath: "notes.txt", Data: []byte("text")},
	})
	require.ErrorIs(t, err, ingest.ErrNoValidFiles)
}

func TestStructuredBatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Shoot")
	require.NoError(t, err)

	files := []ingest.File{
		{RelPath: "light/a.jpg", Data: jpegBytes(t, 100, 80)},
		{RelPath: "max/a.jpg", Data: jpegBytes(t, 4000, 3000)},
		{RelPath: "light/b.jpg", Data: jpegBytes(t, 80, 100)},
		{RelPath: "max/b.jpg", Data: jpegBytes(t, 3000, 4000)},
	}

	result, err := env.pipeline.AppendToAlbum(ctx, album.ID, files)
	require.NoError(t, err)
	require.True(t, result.Album.HasLightMax)
	require.Len(t, result.Photos, 2)

	// Photos come from light copies only.
	for _, photo := range result.Photos {
		require.Contains(t, photo.Src, "/light/")
	}
	require.Equal(t, 100, result.Photos[0].Width)
	require.Equal(t, 80, result.Photos[0].Height)

	albumDir := env.store.AlbumDir(album.ID)
	require.FileExists(t, filepath.Join(albumDir, "light", "a.jpg"))
	require.FileExists(t, filepath.Join(albumDir, "light", "b.jpg"))
	require.FileExists(t, filepath.Join(albumDir, "max", "a.jpg"))
	require.FileExists(t, filepath.Join(albumDir, "max", "b.jpg"))
}

func TestStructureMismatchIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Shoot")
	require.NoError(t, err)

	paired := []ingest.File{
		{RelPath: "light/a.jpg", Data: jpegBytes(t, 100, 80)},
		{RelPath: "max/a.jpg", Data: jpegBytes(t, 400, 300)},
	}
	_, err = env.pipeline.AppendToAlbum(ctx, album.ID, paired)
	require.NoError(t, err)

	unpaired := []ingest.File{
		{RelPath: "light/c.jpg", Data: jpegBytes(t, 100, 80)},
	}
	_, err = env.pipeline.AppendToAlbum(ctx, album.ID, unpaired)
	require.ErrorIs(t, err, ingest.ErrStructureMismatch)

	// Nothing was committed: photo list unchanged, no file written.
	got, err := env.store.GetAlbum(ctx, album.ID)
	require.NoError(t, err)
	require.Len(t, got.Photos, 1)
	require.NoFileExists(t, filepath.Join(env.store.AlbumDir(album.ID), "light", "c.jpg"))
}

func TestCollisionNaming(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Dupes")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = env.pipeline.AppendToAlbum(ctx, album.ID, []ingest.File{
			{RelPath: "same.jpg", Data: jpegBytes(t, 60, 60)},
		})
		require.NoError(t, err)
	}

	dir := env.store.AlbumDir(album.ID)
	require.FileExists(t, filepath.Join(dir, "same.jpg"))
	require.FileExists(t, filepath.Join(dir, "same (1).jpg"))
	require.FileExists(t, filepath.Join(dir, "same (2).jpg"))

	got, err := env.store.GetAlbum(ctx, album.ID)
	require.NoError(t, err)
	require.Len(t, got.Photos, 3)
	require.Equal(t, "same (1)", got.Photos[1].Title)
}

func TestCreateAndIngest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.pipeline.CreateAndIngest(ctx, "Fresh", []ingest.File{
		{RelPath: "a.jpg", Data: jpegBytes(t, 50, 50)},
	})
	require.NoError(t, err)
	require.Equal(t, "Fresh", result.Album.Name)
	require.Len(t, result.Photos, 1)

	// A second bulk upload with the same name reuses the album.
	result2, err := env.pipeline.CreateAndIngest(ctx, "Fresh", []ingest.File{
		{RelPath: "b.jpg", Data: jpegBytes(t, 50, 50)},
	})
	require.NoError(t, err)
	require.Equal(t, result.Album.ID, result2.Album.ID)
	require.Len(t, result2.Album.Photos, 2)
}

func TestSanitizedNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	album, err := env.store.CreateAlbum(ctx, "Odd Names")
	require.NoError(t, err)

	result, err := env.pipeline.AppendToAlbum(ctx, album.ID, []ingest.File{
		{RelPath: `holiday/my photo?.jpg`, Data: jpegBytes(t, 50, 50)},
	})
	require.NoError(t, err)
	require.Len(t, result.Photos, 1)
	require.FileExists(t, filepath.Join(env.store.AlbumDir(album.ID), "my photo_.jpg"))

	variant, _ := sanitize.Classify(`holiday/my photo?.jpg`)
	require.Equal(t, sanitize.VariantNone, variant)
}
