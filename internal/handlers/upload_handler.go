package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/storage"
)

const maxUploadBytes = 15 << 20

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Create receives one reference image as multipart "file" and returns the
// public URL. Clients call this before the appointment insert, never
// concurrently with it.
func (h *UploadHandler) Create(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attach the image as the 'file' field.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Reference images are capped at 15MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}

	url, err := h.uploader.SaveReference(c.Request.Context(), file.Filename, data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Could not store the image.")
		return
	}

	c.JSON(201, gin.H{"url": url})
}
