// Package archive packages album directories into ZIP downloads, streamed
// straight into the response writer so the archive is never buffered whole.
package archive

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
)

const genericFilename = "photos.zip"

type Builder struct {
	log          *slog.Logger
	uploadsRoot  string
	folderPrefix string
	lightLabel   string
	maxLabel     string
	level        int
}

func New(log *slog.Logger, uploadsRoot, folderPrefix, lightLabel, maxLabel string, level int) *Builder {
	if level < flate.NoCompression || level > flate.BestCompression {
		level = flate.DefaultCompression
	}

	return &Builder{
		log:          log,
		uploadsRoot:  uploadsRoot,
		folderPrefix: folderPrefix,
		lightLabel:   lightLabel,
		maxLabel:     maxLabel,
		level:        level,
	}
}

// Filename picks the download name for a set of albums: the album's own
// name for a single album, a generic one otherwise.
func (b *Builder) Filename(albums []models.Album) string {
	if len(albums) == 1 {
		return fmt.Sprintf("%s.zip", albums[0].Name)
	}

	return genericFilename
}

// Build streams a ZIP of the given albums into w. Structured albums get a
// Light and a Max top-level folder each, flat albums a single folder.
// Missing source directories are skipped rather than failing the archive.
func (b *Builder) Build(w io.Writer, albums []models.Album) error {
	const op = "archive.Build"

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, b.level)
	})

	for _, album := range albums {
		if err := b.writeAlbum(zw, album); err != nil {
			_ = zw.Close()

			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (b *Builder) writeAlbum(zw *zip.Writer, album models.Album) error {
	albumDir := filepath.Join(b.uploadsRoot, album.ID)

	if album.HasLightMax {
		lightFolder := fmt.Sprintf("%s %s - Light - %s", b.folderPrefix, album.Name, b.lightLabel)
		maxFolder := fmt.Sprintf("%s %s - Max - %s", b.folderPrefix, album.Name, b.maxLabel)

		if err := b.addDir(zw, filepath.Join(albumDir, "light"), lightFolder); err != nil {
			return err
		}

		return b.addDir(zw, filepath.Join(albumDir, "max"), maxFolder)
	}

	folder := fmt.Sprintf("%s %s", b.folderPrefix, album.Name)

	return b.addDir(zw, albumDir, folder)
}

// addDir recursively copies the files under srcDir into the archive below
// folder. A missing srcDir is not an error.
func (b *Builder) addDir(zw *zip.Writer, srcDir, folder string) error {
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		b.log.Warn("archive source directory missing, skipping", slog.String("dir", srcDir))

		return nil
	}

	return filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		return b.addFile(zw, path, folder+"/"+filepath.ToSlash(rel))
	})
}

func (b *Builder) addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	b.log.Debug("adding file to archive", slog.String("name", name))

	dst, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s in archive: %w", name, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		b.log.Error("failed to copy file into archive", slog.String("name", name), sl.Err(err))

		return fmt.Errorf("failed to copy %s into archive: %w", name, err)
	}

	return nil
}
