package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/issue"
	"github.com/krishisathi/backend/internal/transport/dataloader"
	"github.com/krishisathi/backend/pkg/ctxutil"
)

type issueService interface {
	Create(ctx context.Context, input issue.CreateInput) (*domain.Issue, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	ListMine(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error)
	ListAll(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus) (*domain.Issue, error)
	Reply(ctx context.Context, id uuid.UUID, message string) (*domain.Issue, error)
	ListReplies(ctx context.Context, id uuid.UUID) ([]domain.Reply, error)
}

// IssueHandler serves crop-issue endpoints.
type IssueHandler struct {
	svc       issueService
	log       *slog.Logger
	maxUpload int64
}

// NewIssueHandler creates an IssueHandler. maxUpload bounds a single file.
func NewIssueHandler(svc issueService, logger *slog.Logger, maxUpload int64) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issue"), maxUpload: maxUpload}
}

type statusRequest struct {
	Status string `json:"status"`
}

type issueReplyRequest struct {
	Message  string     `json:"message"`
	FarmerID *uuid.UUID `json:"farmerId"`
	AdminID  *uuid.UUID `json:"adminId"`
}

// Create handles POST /issues (multipart: title, description, cropType, files).
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := multipartForm(w, r, h.maxUpload*(issue.MaxAttachments+1)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	files, closeFiles, err := formFiles(r, "files")
	defer closeFiles()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	is, err := h.svc.Create(r.Context(), issue.CreateInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		CropType:    optionalForm(r, "cropType"),
		Attachments: files,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIssueResponse(is, nil))
}

// ListMine handles GET /issues.
func (h *IssueHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListMine)
}

// ListAll handles GET /admin/issues.
func (h *IssueHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListAll)
}

func (h *IssueHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, issue.ListInput) ([]domain.Issue, int, error)) {
	p, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input := issue.ListInput{Limit: p.Limit, Offset: p.Offset}
	if s := optionalQuery(r, "status"); s != nil {
		status := domain.IssueStatus(*s)
		input.Status = &status
	}

	items, total, err := fetch(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var replies []domain.Reply
	for _, is := range items {
		replies = append(replies, is.Replies...)
	}
	names := h.authorNames(r, replies)

	writeJSON(w, http.StatusOK, listResponse[issueResponse]{
		Items: mapSlice(items, func(is domain.Issue) issueResponse { return toIssueResponse(&is, names) }),
		Total: total,
	})
}

// Get handles GET /issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	is, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(is, h.authorNames(r, is.Replies)))
}

// Replies handles GET /issues/{id}/replies.
func (h *IssueHandler) Replies(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toReplyResponses(replies, h.authorNames(r, replies)))
}

// UpdateStatus handles PATCH /issues/{id}/status.
func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	is, err := h.svc.UpdateStatus(r.Context(), id, domain.IssueStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(is, h.authorNames(r, is.Replies)))
}

// Reply handles POST /issues/{id}/reply. The author is always the caller; a
// body id naming someone else is refused.
func (h *IssueHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req issueReplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	callerID, _ := ctxutil.UserIDFromCtx(r.Context())
	for _, claimed := range []*uuid.UUID{req.FarmerID, req.AdminID} {
		if claimed != nil && *claimed != callerID {
			handleError(w, r, h.log, domain.ErrForbidden)
			return
		}
	}

	is, err := h.svc.Reply(r.Context(), id, req.Message)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(is, h.authorNames(r, is.Replies)))
}

// authorNames resolves reply authors through the request loader. Lookup
// failures degrade to unnamed replies.
func (h *IssueHandler) authorNames(r *http.Request, replies []domain.Reply) map[uuid.UUID]string {
	loaders := dataloader.FromContext(r.Context())
	if loaders == nil || len(replies) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]bool, len(replies))
	ids := make([]uuid.UUID, 0, len(replies))
	for _, rp := range replies {
		if !seen[rp.AuthorID] {
			seen[rp.AuthorID] = true
			ids = append(ids, rp.AuthorID)
		}
	}

	names, err := loaders.AuthorNames(r.Context(), ids)
	if err != nil {
		h.log.WarnContext(r.Context(), "resolve author names", slog.String("error", err.Error()))
		return nil
	}
	return names
}
