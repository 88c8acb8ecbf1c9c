// Package ingest accepts a batch of uploaded files, classifies them into
// light/max variant groups, persists them into the album's directory tree
// and records the resulting photos in the album store.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"photoGallery/internal/config"
	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/sanitize"
	"photoGallery/internal/storage/jsonstore"
	"photoGallery/internal/thumbnail"
)

var (
	// ErrNoValidFiles means nothing in the batch passed size and type checks.
	ErrNoValidFiles = errors.New("no valid image files in upload")

	// ErrStructureMismatch means the album requires paired light and max
	// uploads but the batch did not supply both groups. Nothing is written
	// when this is returned.
	ErrStructureMismatch = errors.New("album requires paired light and max uploads")
)

const (
	lightDirName = "light"
	maxDirName   = "max"

	uploadsURLPrefix    = "/uploads/albums"
	thumbnailsURLPrefix = "/uploads/thumbnails"
)

// File is one uploaded file tagged with the relative path the client sent,
// which may carry a light/ or max/ folder prefix.
type File struct {
	RelPath string
	Data    []byte
}

// Result reports what a batch produced. Skipped lists the relative paths of
// files that failed validation or persistence; they never abort siblings.
type Result struct {
	Album   *models.Album
	Photos  []models.Photo
	Skipped []string
}

type Pipeline struct {
	log         *slog.Logger
	store       *jsonstore.Storage
	thumbs      *thumbnail.Generator
	events      producer.ProducerIface
	maxFileSize int64
	allowed     map[string]bool
}

func New(log *slog.Logger, store *jsonstore.Storage, thumbs *thumbnail.Generator, events producer.ProducerIface, cfg config.Upload) *Pipeline {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[t] = true
	}

	return &Pipeline{
		log:         log,
		store:       store,
		thumbs:      thumbs,
		events:      events,
		maxFileSize: cfg.MaxFileSize,
		allowed:     allowed,
	}
}

// AppendToAlbum ingests a batch into an existing album.
func (p *Pipeline) AppendToAlbum(ctx context.Context, albumID string, files []File) (*Result, error) {
	const op = "ingest.AppendToAlbum"

	album, err := p.store.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p.ingest(ctx, album, files)
}

// CreateAndIngest finds an album by display name, creating it if needed,
// and ingests the batch into it.
func (p *Pipeline) CreateAndIngest(ctx context.Context, albumName string, files []File) (*Result, error) {
	const op = "ingest.CreateAndIngest"

	album, err := p.store.FindAlbumByName(ctx, albumName)
	if errors.Is(err, jsonstore.ErrAlbumNotFound) {
		album, err = p.store.CreateAlbum(ctx, albumName)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p.ingest(ctx, album, files)
}

type classified struct {
	file    File
	variant sanitize.Variant
	name    string
}

func (p *Pipeline) ingest(ctx context.Context, album *models.Album, files []File) (*Result, error) {
	const op = "ingest.ingest"

	result := &Result{Album: album}

	// Validation is skip-and-continue: one bad file never fails the batch.
	var accepted []classified
	var lightCount, maxCount int

	for _, f := range files {
		if int64(len(f.Data)) > p.maxFileSize {
			p.log.Warn("file exceeds size limit, skipping",
				slog.String("file", f.RelPath),
				slog.Int("size", len(f.Data)),
			)
			result.Skipped = append(result.Skipped, f.RelPath)
			continue
		}

		if mt := mimetype.Detect(f.Data); !p.allowed[mt.String()] {
			p.log.Warn("unsupported content type, skipping",
				slog.String("file", f.RelPath),
				slog.String("type", mt.String()),
			)
			result.Skipped = append(result.Skipped, f.RelPath)
			continue
		}

		variant, base := sanitize.Classify(f.RelPath)
		accepted = append(accepted, classified{
			file:    f,
			variant: variant,
			name:    sanitize.Filename(base),
		})

		switch variant {
		case sanitize.VariantLight:
			lightCount++
		case sanitize.VariantMax:
			maxCount++
		}
	}

	if len(accepted) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoValidFiles)
	}

	pairedBatch := lightCount > 0 && maxCount > 0

	// Once structured, always structured: an unpaired batch is rejected
	// whole before anything touches disk.
	if album.HasLightMax && !pairedBatch {
		return nil, fmt.Errorf("%s: %w", op, ErrStructureMismatch)
	}

	structured := pairedBatch || album.HasLightMax

	var photos []models.Photo
	if structured {
		photos = p.writeStructured(album, accepted, result)
	} else {
		photos = p.writeFlat(album, accepted, result)
	}

	updated, err := p.store.AppendPhotos(ctx, album.ID, photos, pairedBatch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result.Album = updated
	result.Photos = photos

	if err = p.events.Publish(ctx, producer.Event{
		Type:      producer.EventPhotosIngested,
		AlbumID:   updated.ID,
		AlbumName: updated.Name,
		Photos:    len(photos),
	}); err != nil {
		p.log.Error("failed to publish ingest event", sl.Err(err))
	}

	return result, nil
}

// writeFlat stores every accepted file directly under the album directory
// and builds one photo per file.
func (p *Pipeline) writeFlat(album *models.Album, accepted []classified, result *Result) []models.Photo {
	dir := p.store.AlbumDir(album.ID)

	var photos []models.Photo
	for _, c := range accepted {
		photo, ok := p.writePhoto(album.ID, dir, "", c)
		if !ok {
			result.Skipped = append(result.Skipped, c.file.RelPath)
			continue
		}
		photos = append(photos, photo)
	}

	return photos
}

// writeStructured stores light files under <album>/light and max files under
// <album>/max. Only light files become photos; max copies exist purely for
// archive downloads. Untagged files in a structured batch are skipped.
func (p *Pipeline) writeStructured(album *models.Album, accepted []classified, result *Result) []models.Photo {
	lightDir := filepath.Join(p.store.AlbumDir(album.ID), lightDirName)
	maxDir := filepath.Join(p.store.AlbumDir(album.ID), maxDirName)

	var photos []models.Photo
	for _, c := range accepted {
		switch c.variant {
		case sanitize.VariantLight:
			photo, ok := p.writePhoto(album.ID, lightDir, lightDirName, c)
			if !ok {
				result.Skipped = append(result.Skipped, c.file.RelPath)
				continue
			}
			photos = append(photos, photo)
		case sanitize.VariantMax:
			if err := writeFile(maxDir, c.name, c.file.Data); err != nil {
				p.log.Error("failed to store max variant", slog.String("file", c.file.RelPath), sl.Err(err))
				result.Skipped = append(result.Skipped, c.file.RelPath)
			}
		default:
			p.log.Warn("untagged file in structured upload, skipping", slog.String("file", c.file.RelPath))
			result.Skipped = append(result.Skipped, c.file.RelPath)
		}
	}

	return photos
}

// writePhoto persists one displayable file and builds its photo entity.
// The photo only exists if the file, its thumbnail and its probed
// dimensions were all produced; a failed step removes the partial file.
func (p *Pipeline) writePhoto(albumID, dir, subdir string, c classified) (models.Photo, bool) {
	name, err := writeFileUnique(dir, c.name, c.file.Data)
	if err != nil {
		p.log.Error("failed to store file", slog.String("file", c.file.RelPath), sl.Err(err))
		return models.Photo{}, false
	}

	storedPath := filepath.Join(dir, name)

	thumbName, err := p.thumbs.Generate(storedPath, albumID, name)
	if err != nil {
		p.log.Error("failed to generate thumbnail", slog.String("file", c.file.RelPath), sl.Err(err))
		_ = os.Remove(storedPath)
		return models.Photo{}, false
	}

	width, height := thumbnail.Dimensions(storedPath)

	src := uploadsURLPrefix + "/" + albumID + "/" + name
	if subdir != "" {
		src = uploadsURLPrefix + "/" + albumID + "/" + subdir + "/" + name
	}

	return models.Photo{
		ID:         uuid.NewString(),
		Src:        src,
		Thumbnail:  thumbnailsURLPrefix + "/" + albumID + "/" + thumbName,
		Title:      sanitize.Title(name),
		Width:      width,
		Height:     height,
		UploadedAt: time.Now(),
	}, true
}

func writeFile(dir, name string, data []byte) error {
	_, err := writeFileUnique(dir, name, data)

	return err
}

func writeFileUnique(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	unique := sanitize.UniqueName(dir, name)
	if err := os.WriteFile(filepath.Join(dir, unique), data, 0o644); err != nil {
		return "", err
	}

	return unique, nil
}
