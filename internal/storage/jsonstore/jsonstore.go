// Package jsonstore keeps all album metadata in a single JSON document.
// Every mutation re-reads, modifies and atomically rewrites the whole
// document under a process-local mutex, which also serializes concurrent
// uploads to the same album.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"photoGallery/internal/models"
)

var ErrAlbumNotFound = errors.New("album not found")

type document struct {
	Albums []models.Album `json:"albums"`
}

type Storage struct {
	mu           sync.Mutex
	metadataPath string
	uploadsRoot  string
	thumbRoot    string
}

func New(metadataPath, uploadsRoot, thumbRoot string) (*Storage, error) {
	const op = "storage.jsonstore.New"

	for _, dir := range []string{filepath.Dir(metadataPath), uploadsRoot, thumbRoot} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s := &Storage{
		metadataPath: metadataPath,
		uploadsRoot:  uploadsRoot,
		thumbRoot:    thumbRoot,
	}

	if _, err := os.Stat(metadataPath); os.IsNotExist(err) {
		if err := s.write(document{Albums: []models.Album{}}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s, nil
}

// AlbumDir is the directory holding an album's image files.
func (s *Storage) AlbumDir(id string) string {
	return filepath.Join(s.uploadsRoot, id)
}

// ThumbnailDir is the directory holding an album's generated previews.
func (s *Storage) ThumbnailDir(id string) string {
	return filepath.Join(s.thumbRoot, id)
}

func (s *Storage) read() (document, error) {
	data, err := os.ReadFile(s.metadataPath)
	if err != nil {
		return document{}, err
	}

	var doc document
	if err = json.Unmarshal(data, &doc); err != nil {
		return document{}, err
	}

	if doc.Albums == nil {
		doc.Albums = []models.Album{}
	}

	return doc, nil
}

func (s *Storage) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot truncate the document.
	tmp := s.metadataPath + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.metadataPath)
}

func (s *Storage) ListAlbums(_ context.Context) ([]models.Album, error) {
	const op = "storage.jsonstore.ListAlbums"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.Albums, nil
}

func (s *Storage) GetAlbum(_ context.Context, id string) (*models.Album, error) {
	const op = "storage.jsonstore.GetAlbum"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range doc.Albums {
		if doc.Albums[i].ID == id {
			album := doc.Albums[i]

			return &album, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, ErrAlbumNotFound)
}

// FindAlbumByName returns the first album with the given display name,
// or ErrAlbumNotFound.
func (s *Storage) FindAlbumByName(_ context.Context, name string) (*models.Album, error) {
	const op = "storage.jsonstore.FindAlbumByName"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range doc.Albums {
		if doc.Albums[i].Name == name {
			album := doc.Albums[i]

			return &album, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, ErrAlbumNotFound)
}

func (s *Storage) CreateAlbum(_ context.Context, name string) (*models.Album, error) {
	const op = "storage.jsonstore.CreateAlbum"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	album := models.NewAlbum(name)

	if err = os.MkdirAll(s.AlbumDir(album.ID), os.ModePerm); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc.Albums = append(doc.Albums, album)

	if err = s.write(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &album, nil
}

func (s *Storage) RenameAlbum(_ context.Context, id, name string) (*models.Album, error) {
	const op = "storage.jsonstore.RenameAlbum"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range doc.Albums {
		if doc.Albums[i].ID != id {
			continue
		}

		doc.Albums[i].Name = name
		doc.Albums[i].UpdatedAt = time.Now()

		if err = s.write(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		album := doc.Albums[i]

		return &album, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrAlbumNotFound)
}

// DeleteAlbum removes the album's files and thumbnails, then drops its
// metadata entry. File removal is best-effort: a missing directory is not
// an error. Deleting an unknown id returns ErrAlbumNotFound.
func (s *Storage) DeleteAlbum(_ context.Context, id string) error {
	const op = "storage.jsonstore.DeleteAlbum"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i := range doc.Albums {
		if doc.Albums[i].ID != id {
			continue
		}

		_ = os.RemoveAll(s.AlbumDir(id))
		_ = os.RemoveAll(s.ThumbnailDir(id))

		doc.Albums = append(doc.Albums[:i], doc.Albums[i+1:]...)

		if err = s.write(doc); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}

	return fmt.Errorf("%s: %w", op, ErrAlbumNotFound)
}

// AppendPhotos merges new photos into the album, sets the album thumbnail
// if it was unset and optionally flips the album into light/max mode.
func (s *Storage) AppendPhotos(_ context.Context, id string, photos []models.Photo, markLightMax bool) (*models.Album, error) {
	const op = "storage.jsonstore.AppendPhotos"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range doc.Albums {
		if doc.Albums[i].ID != id {
			continue
		}

		doc.Albums[i].Photos = append(doc.Albums[i].Photos, photos...)

		if doc.Albums[i].Thumbnail == "" && len(photos) > 0 {
			doc.Albums[i].Thumbnail = photos[0].Thumbnail
		}

		if markLightMax {
			doc.Albums[i].HasLightMax = true
		}

		doc.Albums[i].UpdatedAt = time.Now()

		if err = s.write(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		album := doc.Albums[i]

		return &album, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrAlbumNotFound)
}
