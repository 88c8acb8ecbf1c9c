package models

import (
	"time"

	"github.com/google/uuid"
)

// Album is a named collection of photos backed by a directory under
// the uploads root. A flat album keeps files directly in that directory;
// a structured album splits them into light/ and max/ subdirectories and
// only the light variant is listed in Photos.
type Album struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Thumbnail   string    `json:"thumbnail"`
	Photos      []Photo   `json:"photos"`
	HasLightMax bool      `json:"hasLightMax"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Photo struct {
	ID         string    `json:"id"`
	Src        string    `json:"src"`
	Thumbnail  string    `json:"thumbnail"`
	Title      string    `json:"title"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func NewAlbum(name string) Album {
	now := time.Now()

	return Album{
		ID:        uuid.NewString(),
		Name:      name,
		Photos:    []Photo{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
