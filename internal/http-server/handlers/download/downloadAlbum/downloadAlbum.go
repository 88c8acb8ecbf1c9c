package downloadAlbum

import (
	"context"
	"errors"
	"fmt"
	"io"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Archiver
type Archiver interface {
	Build(w io.Writer, albums []models.Album) error
	Filename(albums []models.Album) string
}

// New streams one album as a ZIP download.
// @Summary      Download album
// @Tags         downloads
// @Produce      application/zip
// @Param        id   path      string  true  "Album ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/albums/{id}/download [get]
func New(log *slog.Logger, albumGetter AlbumGetter, archiver Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.download.downloadAlbum.New"

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

		albums := []models.Album{*album}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiver.Filename(albums)))

		// The archive streams straight into the response, so failures past
		// this point can only be logged, not reported.
		if err = archiver.Build(w, albums); err != nil {
			log.Error("failed to build archive", slog.String("album_id", id), sl.Err(err))
			return
		}

		log.Info("album archive streamed", slog.String("album_id", id))
	}
}
