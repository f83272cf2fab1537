// Package classifier calls the crop-disease model server.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/krishisathi/backend/internal/domain"
)

const service = "classifier"

// maxErrorBody caps how much of a failed response is surfaced.
const maxErrorBody = 4 << 10

// Client posts images to the model server as multipart form data.
// Failures are reported once; the caller decides whether to retry.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a client for the model server's predict URL.
func New(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", service),
	}
}

type predictResponse struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	Remedy      string  `json:"remedy"`
	Error       string  `json:"error"`
}

// Classify uploads image and returns the model's verdict.
// Every failure is a *domain.UpstreamError carrying the upstream message.
func (c *Client) Classify(ctx context.Context, filename string, image io.Reader) (*domain.Classification, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("classifier: create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("classifier: copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("classifier: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("classifier: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "classifier request failed", slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		upstream := upstreamMessage(resp.StatusCode, msg)
		c.log.WarnContext(ctx, "classifier rejected image",
			slog.Int("status", resp.StatusCode),
			slog.String("message", upstream),
		)
		return nil, domain.NewUpstreamError(service, errors.New(upstream))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, domain.NewUpstreamError(service, fmt.Errorf("decode response: %w", err))
	}
	if out.Error != "" {
		return nil, domain.NewUpstreamError(service, errors.New(out.Error))
	}
	if out.Label == "" {
		return nil, domain.NewUpstreamError(service, errors.New("response has no label"))
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		return nil, domain.NewUpstreamError(service, fmt.Errorf("confidence %v out of range", out.Confidence))
	}

	c.log.DebugContext(ctx, "classifier response",
		slog.String("label", out.Label),
		slog.Float64("confidence", out.Confidence),
		slog.Duration("took", time.Since(start)),
	)

	return &domain.Classification{
		Label:       out.Label,
		Confidence:  out.Confidence,
		Description: out.Description,
		Remedy:      out.Remedy,
	}, nil
}

// upstreamMessage prefers a JSON {"error": ...} field and falls back to the raw body.
func upstreamMessage(status int, body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fmt.Sprintf("unexpected status %d", status)
}
