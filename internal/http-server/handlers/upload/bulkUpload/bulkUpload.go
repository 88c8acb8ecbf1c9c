package bulkUpload

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"photoGallery/internal/http-server/handlers/photo/addPhotos"
	"photoGallery/internal/ingest"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
)

const maxMultipartMemory = 64 << 20

type Response struct {
	Message string        `json:"message"`
	Album   *models.Album `json:"album"`
	Skipped []string      `json:"skipped,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BulkIngester
type BulkIngester interface {
	CreateAndIngest(ctx context.Context, albumName string, files []ingest.File) (*ingest.Result, error)
}

// New creates (or reuses) an album by name and ingests a photo batch into
// it in a single call.
// @Summary      Bulk upload
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        albumName  formData  string  true  "Album display name"
// @Param        photos     formData  file    true  "Photo files"
// @Success      200        {object}  bulkUpload.Response
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /api/upload [post]
func New(log *slog.Logger, ingester BulkIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.bulkUpload.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}

		albumName := strings.TrimSpace(r.FormValue("albumName"))
		if albumName == "" {
			log.Error("missing album name")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("albumName is required"))
			return
		}

		files, err := addPhotos.ReadFiles(r.MultipartForm)
		if err != nil {
			log.Error("failed to read uploaded files", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read uploaded files"))
			return
		}

		if len(files) == 0 {
			log.Error("no files in upload")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("no files in upload"))
			return
		}

		result, err := ingester.CreateAndIngest(r.Context(), albumName, files)
		if err != nil {
			switch {
			case errors.Is(err, ingest.ErrStructureMismatch):
				log.Warn("structure mismatch", slog.String("album", albumName))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("album requires paired light and max uploads"))
			case errors.Is(err, ingest.ErrNoValidFiles):
				log.Warn("no valid files in upload", slog.String("album", albumName))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("no valid image files in upload"))
			default:
				log.Error("failed to ingest upload", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to store photos"))
			}
			return
		}

		log.Info("bulk upload complete",
			slog.String("album_id", result.Album.ID),
			slog.Int("added", len(result.Photos)),
			slog.Int("skipped", len(result.Skipped)),
		)

		render.JSON(w, r, Response{
			Message: "upload complete",
			Album:   result.Album,
			Skipped: result.Skipped,
		})
	}
}
