package createAlbum

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
)

type Request struct {
	Name string `json:"name" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumCreator
type AlbumCreator interface {
	CreateAlbum(ctx context.Context, name string) (*models.Album, error)
}

// New creates an empty album.
// @Summary      Create album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Param        request  body      createAlbum.Request  true  "Album name"
// @Success      201      {object}  models.Album
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/albums [post]
func New(log *slog.Logger, albumCreator AlbumCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.album.createAlbum.New"

		log := log.With(slog.String("op", op))

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

		album, err := albumCreator.CreateAlbum(r.Context(), req.Name)
		if err != nil {
			log.Error("failed to create album", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create album"))
			return
		}

		log.Info("album created",
			slog.String("album_id", album.ID),
			slog.String("name", album.Name),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, album)
	}
}
