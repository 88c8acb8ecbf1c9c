package renameAlbum

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/storage/jsonstore"
)

type Request struct {
	Name string `json:"name" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumRenamer
type AlbumRenamer interface {
	RenameAlbum(ctx context.Context, id, name string) (*models.Album, error)
}

// New changes an album's display name.
// @Summary      Rename album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Album ID"
// @Param        request  body      renameAlbum.Request  true  "New name"
// @Success      200      {object}  models.Album
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/albums/{id} [put]
func New(log *slog.Logger, albumRenamer AlbumRenamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.album.renameAlbum.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		album, err := albumRenamer.RenameAlbum(r.Context(), id, req.Name)
		if err != nil {
			if errors.Is(err, jsonstore.ErrAlbumNotFound) {
				log.Warn("album not found", slog.String("album_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("album not found"))
				return
			}

			log.Error("failed to rename album", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to rename album"))
			return
		}

		log.Info("album renamed",
			slog.String("album_id", id),
			slog.String("name", album.Name),
		)

		render.JSON(w, r, album)
	}
}
