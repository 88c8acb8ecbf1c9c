package thumbnail

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Generator produces square, center-cropped JPEG previews for gallery images.
type Generator struct {
	root    string
	size    int
	quality int
}

func New(root string, size, quality int) *Generator {
	return &Generator{
		root:    root,
		size:    size,
		quality: quality,
	}
}

// Generate writes a cover-cropped size x size JPEG for the image at srcPath
// into the album's thumbnail directory and returns the thumbnail file name.
// A decode or encode failure fails only the photo being ingested, so the
// error is returned as-is for the caller to handle.
func (g *Generator) Generate(srcPath, albumID, filename string) (string, error) {
	const op = "thumbnail.Generate"

	src, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	thumb := imaging.Fill(src, g.size, g.size, imaging.Center, imaging.Lanczos)

	dir := filepath.Join(g.root, albumID)
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	dstPath := filepath.Join(dir, name)

	if err = imaging.Save(thumb, dstPath, imaging.JPEGQuality(g.quality)); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return name, nil
}

// Remove deletes an album's thumbnail directory. Missing directories are
// not an error.
func (g *Generator) Remove(albumID string) error {
	return os.RemoveAll(filepath.Join(g.root, albumID))
}

// Dimensions probes the native width and height of the image at path.
// Dimensions are non-critical metadata, so any failure reports (0, 0)
// instead of an error.
func Dimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}

	return cfg.Width, cfg.Height
}
