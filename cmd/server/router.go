package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/phrazzld/newsroom-api/internal/api"
	apiMiddleware "github.com/phrazzld/newsroom-api/internal/api/middleware"
	"github.com/phrazzld/newsroom-api/internal/endpoints"
	"github.com/phrazzld/newsroom-api/internal/service"
)

// requestTimeout bounds the context handed to each request's store calls.
const requestTimeout = 30 * time.Second

// routerDeps carries what the router needs. Nil services are allowed when
// the router is only built to print its documentation.
type routerDeps struct {
	logger       *slog.Logger
	descriptions endpoints.Descriptions

	topicService   service.TopicService
	userService    service.UserService
	articleService service.ArticleService
	commentService service.CommentService

	rateLimitRPS   float64
	rateLimitBurst int
}

// newRouter creates the application router with all routes and middleware.
func newRouter(deps routerDeps) *chi.Mux {
	logger := deps.logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.NewTraceMiddleware(logger))
	r.Use(apiMiddleware.NewRateLimiter(deps.rateLimitRPS, deps.rateLimitBurst).Handler)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Set before mounting so subrouters inherit them.
	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	listing := api.NewListingHandler(deps.descriptions, deps.topicService, deps.userService)
	articles := api.NewArticleHandler(deps.articleService, deps.commentService)

	r.Route("/api", func(r chi.Router) {
		api.RegisterRoutes(r, listing, articles)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
