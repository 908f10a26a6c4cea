package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/edupack/scorm-server/internal/service"
)

// multipartMemory is the in-memory parse threshold; larger parts spill to
// temp files. The request-wide size cap is enforced by the MaxBytes
// middleware, not here.
const multipartMemory = 32 << 20

type ScormHandler struct {
	svc *service.ScormService
}

func NewScormHandler(svc *service.ScormService) *ScormHandler {
	return &ScormHandler{svc: svc}
}

func (h *ScormHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum file size is 200MB")
			return
		}
		writeError(w, http.StatusBadRequest, "No file part in the request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part in the request")
		return
	}
	defer file.Close()

	report, err := h.svc.ProcessUpload(header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFilename):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotZip):
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, service.ErrBadArchive):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("upload-scorm: unexpected error: %v", err)
			writeError(w, http.StatusInternalServerError, "An unexpected server error occurred: "+err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}
