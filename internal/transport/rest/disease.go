package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/krishisathi/backend/internal/domain"
)

type diseaseService interface {
	Detect(ctx context.Context, image domain.Upload) (*domain.DiseaseDetection, error)
	History(ctx context.Context, limit, offset int) ([]domain.DiseaseDetection, error)
}

// DiseaseHandler serves crop-disease detection.
type DiseaseHandler struct {
	svc       diseaseService
	log       *slog.Logger
	maxUpload int64
}

// NewDiseaseHandler creates a DiseaseHandler.
func NewDiseaseHandler(svc diseaseService, logger *slog.Logger, maxUpload int64) *DiseaseHandler {
	return &DiseaseHandler{svc: svc, log: logger.With("handler", "disease"), maxUpload: maxUpload}
}

// Detect handles POST /disease/detect (multipart: image).
func (h *DiseaseHandler) Detect(w http.ResponseWriter, r *http.Request) {
	if err := multipartForm(w, r, h.maxUpload*2); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	image, closeFile, err := formFile(r, "image")
	defer closeFile()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Detect(r.Context(), image)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetectionResponse(d))
}

// History handles GET /disease/history.
func (h *DiseaseHandler) History(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.History(r.Context(), p.Limit, p.Offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, func(d domain.DiseaseDetection) detectionResponse {
		return toDetectionResponse(&d)
	}))
}
