package addPhotos

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseForm(t *testing.T, body *bytes.Buffer, boundary string) *multipart.Form {
	t.Helper()

	form, err := multipart.NewReader(body, boundary).ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form
}

func TestReadFiles_KeepsFolderPrefixes(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range []string{"light/a.jpg", "max/a.jpg", "flat.jpg"} {
		part, err := writer.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("data for " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	// The parsed FileHeader.Filename only carries the base name; ReadFiles
	// must still see the full relative path.
	form := parseForm(t, body, writer.Boundary())
	require.Equal(t, "a.jpg", form.File["photos"][0].Filename)

	files, err := ReadFiles(form)
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.Equal(t, "light/a.jpg", files[0].RelPath)
	require.Equal(t, "max/a.jpg", files[1].RelPath)
	require.Equal(t, "flat.jpg", files[2].RelPath)
	require.Equal(t, []byte("data for light/a.jpg"), files[0].Data)
}

func TestReadFiles_EmptyForm(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("albumName", "no files"))
	require.NoError(t, writer.Close())

	form := parseForm(t, body, writer.Boundary())

	files, err := ReadFiles(form)
	require.NoError(t, err)
	require.Empty(t, files)
}
