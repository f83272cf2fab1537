//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/krishisathi/backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/krishisathi/backend/internal/adapter/postgres/user"
	"github.com/krishisathi/backend/internal/app"
	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
)

// Minimal payloads that pass content sniffing.
var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

const testPassword = "kharif-season-2026"

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer runs the fully wired application against a PostgreSQL
// container and a fake disease model server.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := r.FormFile("file"); err != nil {
			http.Error(w, `{"error":"no file"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"label":"Tomato___Early_blight","confidence":0.91,"description":"Fungal leaf spots","remedy":"Remove infected leaves"}`)
	}))
	t.Cleanup(model.Close)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-at-least-32-characters-long",
			JWTIssuer:        "krishisathi-e2e",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,PATCH,OPTIONS", AllowedHeaders: "Authorization,Content-Type"},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, UpstreamPerMinute: 1000},
		Storage: config.StorageConfig{
			UploadDir:      t.TempDir(),
			PublicPrefix:   "/uploads",
			MaxUploadBytes: 1 << 20,
		},
		Classifier: config.ClassifierConfig{URL: model.URL + "/predict", Timeout: 5 * time.Second},
		Chat:       config.ChatConfig{Provider: config.ChatProviderAnthropic},
	}

	handler, stop, err := app.NewHandler(cfg, pool, logger)
	require.NoError(t, err)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

type account struct {
	ID    uuid.UUID
	Email string
	Token string
}

// registerFarmer signs a new farmer up through the API.
func (ts *testServer) registerFarmer(t *testing.T, name string) account {
	t.Helper()
	email := fmt.Sprintf("%s-%s@example.com", name, uuid.New().String()[:8])

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email": email, "password": testPassword, "name": name, "village": "Kothur",
	})
	require.Equal(t, http.StatusCreated, status, body)

	user := body["user"].(map[string]any)
	return account{ID: uuid.MustParse(user["id"].(string)), Email: email, Token: body["accessToken"].(string)}
}

// registerAdmin signs up, promotes the account the way cmd/promote does and
// logs in again for a token carrying the admin role.
func (ts *testServer) registerAdmin(t *testing.T, name string) account {
	t.Helper()
	acc := ts.registerFarmer(t, name)

	_, err := userrepo.New(ts.Pool).SetRoleByEmail(context.Background(), acc.Email, domain.UserRoleAdmin)
	require.NoError(t, err)

	status, body := ts.doJSON(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email": acc.Email, "password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, body)
	acc.Token = body["accessToken"].(string)
	return acc
}

// doJSON sends an optional JSON body and decodes an object response.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	status, raw := ts.do(t, method, path, token, "application/json", body)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return status, out
}

// getList fetches a JSON array.
func (ts *testServer) getList(t *testing.T, path, token string) (int, []any) {
	t.Helper()
	status, raw := ts.do(t, http.MethodGet, path, token, "", nil)
	var out []any
	if status == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return status, out
}

type formFile struct {
	field, name string
	content     []byte
}

// doMultipart posts form fields and files.
func (ts *testServer) doMultipart(t *testing.T, path, token string, fields map[string]string, files ...formFile) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	status, raw := ts.do(t, http.MethodPost, path, token, mw.FormDataContentType(), &buf)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return status, out
}

func (ts *testServer) do(t *testing.T, method, path, token, contentType string, body io.Reader) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}
