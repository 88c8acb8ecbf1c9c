package addPhotos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"photoGallery/internal/ingest"
	"photoGallery/internal/lib/api/response"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/storage/jsonstore"
)

// maxMultipartMemory bounds how much of the form stays in memory before
// spilling to temp files.
const maxMultipartMemory = 64 << 20

type Response struct {
	Message string         `json:"message"`
	Photos  []models.Photo `json:"photos"`
	Skipped []string       `json:"skipped,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Ingester
type Ingester interface {
	AppendToAlbum(ctx context.Context, albumID string, files []ingest.File) (*ingest.Result, error)
}

// partFilename recovers the filename the client actually sent. The parsed
// FileHeader.Filename is stripped to its base name, which loses the light/
// and max/ folder prefixes, so the raw Content-Disposition is re-parsed.
func partFilename(h *multipart.FileHeader) string {
	if cd := h.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}

	return h.Filename
}

// ReadFiles collects the uploaded "photos" parts into ingest files, keeping
// the client-supplied file name as the relative path so light/max folder
// prefixes survive.
func ReadFiles(form *multipart.Form) ([]ingest.File, error) {
	headers := form.File["photos"]

	files := make([]ingest.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, ingest.File{
			RelPath: partFilename(h),
			Data:    data,
		})
	}

	return files, nil
}

// New ingests a multipart photo batch into an existing album.
// @Summary      Upload photos to an album
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "Album ID"
// @Param        photos  formData  file    true  "Photo files; names may carry light/ or max/ prefixes"
// @Success      200     {object}  addPhotos.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /api/albums/{id}/photos [post]
func New(log *slog.Logger, ingester Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.addPhotos.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}

		files, err := ReadFiles(r.MultipartForm)
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

		result, err := ingester.AppendToAlbum(r.Context(), id, files)
		if err != nil {
			switch {
			case errors.Is(err, jsonstore.ErrAlbumNotFound):
				log.Warn("album not found", slog.String("album_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("album not found"))
			case errors.Is(err, ingest.ErrStructureMismatch):
				log.Warn("structure mismatch", slog.String("album_id", id))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("album requires paired light and max uploads"))
			case errors.Is(err, ingest.ErrNoValidFiles):
				log.Warn("no valid files in upload", slog.String("album_id", id))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("no valid image files in upload"))
			default:
				log.Error("failed to ingest photos", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to store photos"))
			}
			return
		}

		log.Info("photos added",
			slog.String("album_id", id),
			slog.Int("added", len(result.Photos)),
			slog.Int("skipped", len(result.Skipped)),
		)

		render.JSON(w, r, Response{
			Message: "photos uploaded",
			Photos:  result.Photos,
			Skipped: result.Skipped,
		})
	}
}
