package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/subsidy"
)

type subsidyService interface {
	Apply(ctx context.Context, input subsidy.ApplyInput) (*domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error)
	ListAll(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error)
	Reply(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error)
	ListReplies(ctx context.Context, id uuid.UUID) ([]string, error)
}

// SubsidyHandler serves subsidy application endpoints.
type SubsidyHandler struct {
	svc       subsidyService
	log       *slog.Logger
	maxUpload int64
}

// NewSubsidyHandler creates a SubsidyHandler. maxUpload bounds a single document.
func NewSubsidyHandler(svc subsidyService, logger *slog.Logger, maxUpload int64) *SubsidyHandler {
	return &SubsidyHandler{svc: svc, log: logger.With("handler", "subsidy"), maxUpload: maxUpload}
}

type subsidyReplyRequest struct {
	Reply string `json:"reply"`
}

// Apply handles POST /subsidy/apply.
func (h *SubsidyHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := multipartForm(w, r, h.maxUpload*int64(len(domain.DocumentSlots)+1)); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	docs := make(map[string]domain.Upload, len(domain.DocumentSlots))
	for _, slot := range domain.DocumentSlots {
		up, closeFile, err := formFile(r, slot)
		defer closeFile()
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if up.Content != nil {
			docs[slot] = up
		}
	}

	var landArea float64
	if raw := strings.TrimSpace(r.FormValue("landArea")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("landArea", "must be a number"))
			return
		}
		landArea = v
	}

	app, err := h.svc.Apply(r.Context(), subsidy.ApplyInput{
		SchemeName: r.FormValue("schemeName"),
		LandArea:   landArea,
		CropType:   optionalForm(r, "cropType"),
		Documents:  docs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// ListMine handles GET /subsidy/my.
func (h *SubsidyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListMine)
}

// ListAll handles GET /subsidy/all.
func (h *SubsidyHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListAll)
}

func (h *SubsidyHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, subsidy.ListInput) ([]domain.Application, int, error)) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input := subsidy.ListInput{Limit: p.Limit, Offset: p.Offset}
	if s := optionalQuery(r, "status"); s != nil {
		status := domain.ApplicationStatus(*s)
		input.Status = &status
	}

	apps, total, err := fetch(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[applicationResponse]{
		Items: mapSlice(apps, func(a domain.Application) applicationResponse { return toApplicationResponse(&a) }),
		Total: total,
	})
}

// Get handles GET /subsidy/{id}.
func (h *SubsidyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Replies handles GET /subsidy/{id}/replies.
func (h *SubsidyHandler) Replies(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	replies, err := h.svc.ListReplies(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, replies)
}

// UpdateStatus handles PUT /subsidy/update-status/{id}.
func (h *SubsidyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.UpdateStatus(r.Context(), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// Reply handles PUT /subsidy/reply/{id}.
func (h *SubsidyHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req subsidyReplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Reply(r.Context(), id, req.Reply)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}
