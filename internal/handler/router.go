package handler

import (
	"net/http"
	"time"

	"github.com/valiantdoor/backend/internal/mailer"
	"github.com/valiantdoor/backend/internal/service"
)

// Deps carries everything the router needs to wire the HTTP surface.
type Deps struct {
	Env          string
	PublicDir    string
	FrontendURL  string
	StorageName  string
	Requests     service.RequestService
	Reviews      service.ReviewService
	Mailer       mailer.Mailer
	TestEmailKey string
	AdminKey     string
}

// NewRouter builds the full handler chain: routes, per-group rate limits,
// request logging, security headers, and optional CORS.
func NewRouter(deps Deps) http.Handler {
	healthHandler := NewHealthHandler(deps.Env, deps.StorageName, deps.Mailer.Configured())
	requestHandler := NewRequestHandler(deps.Requests, deps.AdminKey)
	reviewHandler := NewReviewHandler(deps.Reviews, deps.AdminKey)
	testEmailHandler := NewTestEmailHandler(deps.Mailer, deps.TestEmailKey)

	apiLimiter := NewRateLimiter(100, 15*time.Minute, "Too many requests, please try again later.")
	testEmailLimiter := NewRateLimiter(5, time.Hour, "Too many test email requests.")

	api := func(h http.HandlerFunc) http.Handler {
		return apiLimiter.Middleware(h)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/health", api(healthHandler.Health))
	mux.Handle("POST /api/requests", api(requestHandler.Submit))
	mux.Handle("GET /api/requests", api(requestHandler.List))
	mux.Handle("GET /api/reviews", api(reviewHandler.List))
	mux.Handle("POST /api/reviews", api(reviewHandler.Submit))
	mux.Handle("PATCH /api/reviews/{id}/status", api(reviewHandler.UpdateStatus))
	mux.Handle("POST /api/test-email", testEmailLimiter.Middleware(api(testEmailHandler.Send)))

	// Unmatched /api/* paths get a JSON 404 instead of the file server.
	mux.Handle("/api/", api(apiNotFound))

	// Static site assets from the public directory.
	mux.Handle("/", http.FileServer(http.Dir(deps.PublicDir)))

	var h http.Handler = RequestLogger(mux)
	h = SecurityHeaders(h)
	if deps.FrontendURL != "" {
		h = CORS(deps.FrontendURL, h)
	}
	return h
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, false, "API endpoint not found")
}
