package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krishisathi/backend/internal/config"
	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/transport/dataloader"
	"github.com/krishisathi/backend/internal/transport/middleware"
)

// Rate limit bucket names.
const (
	limitAuth     = "auth"
	limitUpstream = "upstream"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Caller, error)
}

type authorLookup interface {
	GetNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Issue   *IssueHandler
	Subsidy *SubsidyHandler
	Disease *DiseaseHandler
	Chat    *ChatHandler
	Market  *MarketHandler
}

// RouterDeps holds the cross-cutting collaborators of the router.
type RouterDeps struct {
	Logger     *slog.Logger
	Tokens     tokenValidator
	Authors    authorLookup
	Limiter    *middleware.RateLimiter
	Metrics    *middleware.Metrics
	Gatherer   prometheus.Gatherer
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig
	UploadDir  string
	UploadPath string
}

// NewRouter builds the HTTP handler serving the whole API.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	farmer := middleware.RequireRole(domain.UserRoleFarmer)
	admin := middleware.RequireRole(domain.UserRoleAdmin)
	authLimit := deps.Limiter.Limit(limitAuth, deps.RateLimit.AuthPerMinute)
	upstreamLimit := deps.Limiter.Limit(limitUpstream, deps.RateLimit.UpstreamPerMinute)

	authed := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAuth(fn) }
	with := func(fn http.HandlerFunc, mws ...middleware.Middleware) http.Handler {
		return middleware.Chain(mws...)(fn)
	}

	// Health and metrics.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// Auth.
	mux.Handle("POST /auth/register", with(h.Auth.Register, authLimit))
	mux.Handle("POST /auth/login", with(h.Auth.Login, authLimit))

	// Profile.
	mux.Handle("GET /me", authed(h.Profile.Me))
	mux.Handle("PATCH /me", authed(h.Profile.UpdateMe))
	mux.Handle("GET /admin/farmers", with(h.Profile.ListFarmers, admin))

	// Crop issues.
	mux.Handle("POST /issues", with(h.Issue.Create, farmer))
	mux.Handle("GET /issues", authed(h.Issue.ListMine))
	mux.Handle("GET /issues/{id}", authed(h.Issue.Get))
	mux.Handle("GET /issues/{id}/replies", authed(h.Issue.Replies))
	mux.Handle("POST /issues/{id}/reply", authed(h.Issue.Reply))
	mux.Handle("PATCH /issues/{id}/status", with(h.Issue.UpdateStatus, admin))
	mux.Handle("GET /admin/issues", with(h.Issue.ListAll, admin))

	// Subsidy applications.
	mux.Handle("POST /subsidy/apply", with(h.Subsidy.Apply, farmer))
	mux.Handle("GET /subsidy/my", authed(h.Subsidy.ListMine))
	mux.Handle("GET /subsidy/all", with(h.Subsidy.ListAll, admin))
	mux.Handle("GET /subsidy/{id}", authed(h.Subsidy.Get))
	mux.Handle("GET /subsidy/{id}/replies", authed(h.Subsidy.Replies))
	mux.Handle("PUT /subsidy/update-status/{id}", with(h.Subsidy.UpdateStatus, admin))
	mux.Handle("PUT /subsidy/reply/{id}", with(h.Subsidy.Reply, admin))

	// Disease detection.
	mux.Handle("POST /disease/detect", with(h.Disease.Detect, farmer, upstreamLimit))
	mux.Handle("GET /disease/history", with(h.Disease.History, farmer))

	// Chat.
	mux.Handle("POST /chat", with(h.Chat.Ask, middleware.RequireAuth, upstreamLimit))
	mux.Handle("GET /chat/history", authed(h.Chat.History))

	// Market prices.
	mux.Handle("GET /market/prices", authed(h.Market.Prices))
	mux.Handle("GET /market/commodities", authed(h.Market.Commodities))

	// Uploaded files.
	if deps.UploadDir != "" && deps.UploadPath != "" {
		prefix := deps.UploadPath + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(deps.UploadDir))))
	}

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
		dataloader.Middleware(deps.Authors),
		deps.Metrics.Middleware(),
	)(mux)
}
