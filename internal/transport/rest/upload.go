package rest

import (
	"net/http"

	"github.com/ecomshop/catalog/pkg/web"
)

// maxUploadMemory caps how much of a multipart body is held in memory before
// it spills to temp files.
const maxUploadMemory = 10 << 20 // 10 MiB

// uploadResponse mirrors the remote-host contract: success with a public URL,
// or failure with a human-readable message.
type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

// UploadImage accepts a multipart form with exactly one file under the "file"
// field, forwards it to the remote image host and returns the public URL.
// Zero or multiple files is a client error. Any temp copies created while
// parsing are removed after the attempt, whatever the outcome.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		mLogger.ErrorContext(r.Context(), "Error parsing form data", "error", err)
		web.RespondJSON(w, mLogger, http.StatusBadRequest, uploadResponse{Success: false, Message: "Error parsing form data"})
		return
	}
	form := r.MultipartForm
	defer func() {
		if err := form.RemoveAll(); err != nil {
			mLogger.WarnContext(r.Context(), "Failed to remove multipart temp files", "error", err)
		}
	}()

	files := form.File["file"]
	switch {
	case len(files) == 0:
		mLogger.WarnContext(r.Context(), "Upload request without a file")
		web.RespondJSON(w, mLogger, http.StatusBadRequest, uploadResponse{Success: false, Message: "No file uploaded"})
		return
	case len(files) > 1:
		mLogger.WarnContext(r.Context(), "Upload request with multiple files", "count", len(files))
		web.RespondJSON(w, mLogger, http.StatusBadRequest, uploadResponse{Success: false, Message: "Expected exactly one file"})
		return
	}

	fileHeader := files[0]
	file, err := fileHeader.Open()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error opening uploaded file", "error", err)
		web.RespondJSON(w, mLogger, http.StatusInternalServerError, uploadResponse{Success: false, Message: "Error reading uploaded file"})
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.uploader.Upload(r.Context(), fileHeader.Filename, file)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error uploading image", "filename", fileHeader.Filename, "error", err)
		web.RespondJSON(w, mLogger, http.StatusInternalServerError, uploadResponse{Success: false, Message: "Failed to upload image"})
		return
	}

	mLogger.InfoContext(r.Context(), "Image uploaded successfully", "filename", fileHeader.Filename, "url", url)
	web.RespondJSON(w, mLogger, http.StatusOK, uploadResponse{Success: true, ImageURL: url})
}
