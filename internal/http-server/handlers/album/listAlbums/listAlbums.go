package listAlbums

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AlbumLister
type AlbumLister interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)
}

// New returns every album with its photos inlined.
// @Summary      List albums
// @Tags         albums
// @Produce      json
// @Success      200  {array}   models.Album
// @Failure      500  {object}  response.Response
// @Router       /api/albums [get]
func New(log *slog.Logger, albumLister AlbumLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.album.listAlbums.New"

		log := log.With(slog.String("op", op))

		albums, err := albumLister.ListAlbums(r.Context())
		if err != nil {
			log.Error("failed to list albums", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list albums"))
			return
		}

		log.Info("albums listed", slog.Int("count", len(albums)))

		render.JSON(w, r, albums)
	}
}
