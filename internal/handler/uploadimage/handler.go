package uploadimage

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mida-hub/recipe-box/internal/auth"
	"github.com/mida-hub/recipe-box/internal/httpjson"
	"github.com/mida-hub/recipe-box/internal/images"
)

func NewHandler(store images.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store images.Store
}

// UploadImage accepts a multipart upload in the "image" field, stores it
// publicly readable, and returns its URL. Oversized files are rejected
// before any store write.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := auth.UID(ctx)

	file, header, err := r.FormFile("image")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "No image file provided.")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxUploadBytes+1))
	if err != nil {
		slog.ErrorContext(ctx, "uploadimage: reading upload", "error", err, "uid", uid)
		httpjson.Error(w, http.StatusInternalServerError, "Error processing image upload.")
		return
	}
	if len(data) > images.MaxUploadBytes {
		httpjson.Error(w, http.StatusRequestEntityTooLarge, "Image exceeds the 5 MiB limit.")
		return
	}

	path := images.ObjectPath(uid, header.Filename)
	url, err := h.store.Save(ctx, path, header.Header.Get("Content-Type"), data)
	if err != nil {
		slog.ErrorContext(ctx, "uploadimage: saving image", "error", err, "path", path, "uid", uid)
		httpjson.Error(w, http.StatusInternalServerError, "Error uploading image.")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"imageUrl": url})
}
