package deleteAlbum

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/storage/jsonstore"
)

type Response struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumDeleter
type AlbumDeleter interface {
	DeleteAlbum(ctx context.Context, id string) error
}

// New removes an album together with its files and thumbnails.
// @Summary      Delete album
// @Tags         albums
// @Produce      json
// @Param        id   path      string  true  "Album ID"
// @Success      200  {object}  deleteAlbum.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/albums/{id} [delete]
func New(log *slog.Logger, albumDeleter AlbumDeleter, events producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.album.deleteAlbum.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")

		err := albumDeleter.DeleteAlbum(r.Context(), id)
		if err != nil {
			if errors.Is(err, jsonstore.ErrAlbumNotFound) {
				log.Warn("album not found for deletion", slog.String("album_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("album not found"))
				return
			}

			log.Error("failed to delete album", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete album"))
			return
		}

		if err = events.Publish(r.Context(), producer.Event{
			Type:    producer.EventAlbumDeleted,
			AlbumID: id,
		}); err != nil {
			log.Error("failed to publish delete event", sl.Err(err))
		}

		log.Info("album deleted", slog.String("album_id", id))

		render.JSON(w, r, Response{
			Message: "album deleted",
			ID:      id,
		})
	}
}
