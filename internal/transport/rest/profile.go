package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/farmer"
)

type farmerService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input farmer.UpdateProfileInput) (*domain.User, error)
	ListFarmers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// ProfileHandler serves /me and the admin farmer directory.
type ProfileHandler struct {
	svc farmerService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc farmerService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Village  *string `json:"village"`
	District *string `json:"district"`
	State    *string `json:"state"`
}

// Me handles GET /me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PATCH /me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), farmer.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Village:  req.Village,
		District: req.District,
		State:    req.State,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ListFarmers handles GET /admin/farmers.
func (h *ProfileHandler) ListFarmers(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	users, total, err := h.svc.ListFarmers(r.Context(), p.Limit, p.Offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[userResponse]{
		Items: mapSlice(users, func(u domain.User) userResponse { return toUserResponse(&u) }),
		Total: total,
	})
}
