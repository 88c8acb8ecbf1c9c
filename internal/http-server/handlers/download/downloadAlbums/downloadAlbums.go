package downloadAlbums

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/storage/jsonstore"
)

type Request struct {
	AlbumIDs []string `json:"albumIds" validate:"required,min=1"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumGetter
type AlbumGetter interface {
	GetAlbum(ctx context.Context, id string) (*models.Album, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Archiver
type Archiver interface {
	Build(w io.Writer, albums []models.Album) error
	Filename(albums []models.Album) string
}

// New streams several albums as one ZIP download. Unknown ids are skipped;
// the request only fails when none of them resolve.
// @Summary      Download multiple albums
// @Tags         downloads
// @Accept       json
// @Produce      application/zip
// @Param        request  body      downloadAlbums.Request  true  "Album IDs"
// @Success      200      {file}    file
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/download-multiple [post]
func New(log *slog.Logger, albumGetter AlbumGetter, archiver Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.download.downloadAlbums.New"

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

		var albums []models.Album
		for _, id := range req.AlbumIDs {
			album, err := albumGetter.GetAlbum(r.Context(), id)
			if err != nil {
				if errors.Is(err, jsonstore.ErrAlbumNotFound) {
					log.Warn("album not found, skipping", slog.String("album_id", id))
					continue
				}

				log.Error("failed to get album", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get album"))
				return
			}

			albums = append(albums, *album)
		}

		if len(albums) == 0 {
			log.Warn("no albums resolved for download")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no albums found"))
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiver.Filename(albums)))

		if err = archiver.Build(w, albums); err != nil {
			log.Error("failed to build archive", sl.Err(err))
			return
		}

		log.Info("albums archive streamed", slog.Int("albums", len(albums)))
	}
}
