package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/workflow"
)

func statusNames[S ~string](statuses []S) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Village   *string   `json:"village"`
	District  *string   `json:"district"`
	State     *string   `json:"state"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Village:   u.Village,
		District:  u.District,
		State:     u.State,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type replyResponse struct {
	Message    string    `json:"message"`
	SenderType string    `json:"senderType"`
	FarmerID   *string   `json:"farmerId,omitempty"`
	AdminID    *string   `json:"adminId,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// toReplyResponses renders a thread. names may be nil.
func toReplyResponses(replies []domain.Reply, names map[uuid.UUID]string) []replyResponse {
	out := make([]replyResponse, 0, len(replies))
	for _, rp := range replies {
		author := rp.AuthorID.String()
		resp := replyResponse{
			Message:    rp.Message,
			SenderType: rp.SenderType.String(),
			AuthorName: names[rp.AuthorID],
			CreatedAt:  rp.CreatedAt,
		}
		if rp.SenderType == domain.SenderTypeAdmin {
			resp.AdminID = &author
		} else {
			resp.FarmerID = &author
		}
		out = append(out, resp)
	}
	return out
}

type issueResponse struct {
	ID          uuid.UUID       `json:"id"`
	FarmerID    uuid.UUID       `json:"farmerId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CropType    *string         `json:"cropType"`
	Status      string          `json:"status"`
	Next        []string        `json:"allowedTransitions"`
	Attachments []string        `json:"attachments"`
	Replies     []replyResponse `json:"replies"`
	CreatedAt   time.Time       `json:"createdAt"`
	ResolvedAt  *time.Time      `json:"resolvedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toIssueResponse(is *domain.Issue, names map[uuid.UUID]string) issueResponse {
	attachments := is.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return issueResponse{
		ID:          is.ID,
		FarmerID:    is.OwnerID,
		Title:       is.Title,
		Description: is.Description,
		CropType:    is.CropType,
		Status:      is.Status.String(),
		Next:        statusNames(workflow.IssueLifecycle.Next(is.Status)),
		Attachments: attachments,
		Replies:     toReplyResponses(is.Replies, names),
		CreatedAt:   is.CreatedAt,
		ResolvedAt:  is.ResolvedAt,
		UpdatedAt:   is.UpdatedAt,
	}
}

type applicationResponse struct {
	ID            uuid.UUID                   `json:"id"`
	FarmerID      uuid.UUID                   `json:"farmerId"`
	SchemeName    string                      `json:"schemeName"`
	LandArea      float64                     `json:"landArea"`
	CropType      *string                     `json:"cropType"`
	Documents     domain.ApplicationDocuments `json:"documents"`
	Status        string                      `json:"status"`
	Next          []string                    `json:"allowedTransitions"`
	AdminReplies  []string                    `json:"adminReplies"`
	SubmittedDate time.Time                   `json:"submittedDate"`
	ReviewedDate  *time.Time                  `json:"reviewedDate"`
}

func toApplicationResponse(app *domain.Application) applicationResponse {
	replies := app.AdminReplies
	if replies == nil {
		replies = []string{}
	}
	return applicationResponse{
		ID:            app.ID,
		FarmerID:      app.OwnerID,
		SchemeName:    app.SchemeName,
		LandArea:      app.LandArea,
		CropType:      app.CropType,
		Documents:     app.Documents,
		Status:        app.Status.String(),
		Next:          statusNames(workflow.ApplicationLifecycle.Next(app.Status)),
		AdminReplies:  replies,
		SubmittedDate: app.SubmittedDate,
		ReviewedDate:  app.ReviewedDate,
	}
}

type detectionResponse struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Disease     string    `json:"disease"`
	Confidence  float64   `json:"confidence"`
	Description string    `json:"description"`
	Remedy      string    `json:"remedy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDetectionResponse(d *domain.DiseaseDetection) detectionResponse {
	return detectionResponse{
		ID:          d.ID,
		ImageURL:    d.ImageRef,
		Disease:     d.Label,
		Confidence:  d.Confidence,
		Description: d.Description,
		Remedy:      d.Remedy,
		CreatedAt:   d.CreatedAt,
	}
}

type chatResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}

func toChatResponse(m *domain.ChatMessage) chatResponse {
	return chatResponse{ID: m.ID, Message: m.Prompt, Reply: m.Answer, CreatedAt: m.CreatedAt}
}

type priceResponse struct {
	Commodity  string  `json:"commodity"`
	Market     string  `json:"market"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
	ModalPrice float64 `json:"modalPrice"`
	Unit       string  `json:"unit"`
	Date       string  `json:"date"`
}

func toPriceResponse(p domain.MarketPrice) priceResponse {
	return priceResponse{
		Commodity:  p.Commodity,
		Market:     p.Market,
		State:      p.State,
		MinPrice:   p.MinPrice,
		MaxPrice:   p.MaxPrice,
		ModalPrice: p.ModalPrice,
		Unit:       p.Unit,
		Date:       p.PriceDate.Format(time.DateOnly),
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
