package getAlbum

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/storage/jsonstore"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumGetter
type AlbumGetter interface {
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
}

// New returns a single album by id.
// @Summary      Get album
// @Tags         albums
// @Produce      json
// @Param        id   path      string  true  "Album ID"
// @Success      200  {object}  models.Album
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/albums/{id} [get]
func New(log *slog.Logger, albumGetter AlbumGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.album.getAlbum.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")

		album, err := albumGetter.GetAlbum(r.Context(), id)
		if err != nil {
			if errors.Is(err, jsonstore.ErrAlbumNotFound) {
				log.Warn("album not found", slog.String("album_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("album not found"))
				return
			}

			log.Error("failed to get album", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get album"))
			return
		}

		log.Info("album retrieved", slog.String("album_id", id))

		render.JSON(w, r, album)
	}
}
