package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/newsroom-api/internal/config"
	"github.com/phrazzld/newsroom-api/internal/endpoints"
	"github.com/phrazzld/newsroom-api/internal/platform/postgres"
	"github.com/phrazzld/newsroom-api/internal/service"
)

// application holds the shared dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	descriptions endpoints.Descriptions

	topicService   service.TopicService
	userService    service.UserService
	articleService service.ArticleService
	commentService service.CommentService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	descriptions, err := endpoints.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load endpoint descriptions: %w", err)
	}

	topicStore := postgres.NewPostgresTopicStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)
	articleStore := postgres.NewPostgresArticleStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)

	app := &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		descriptions: descriptions,
	}

	if app.topicService, err = service.NewTopicService(topicStore, logger); err != nil {
		return nil, fmt.Errorf("failed to create topic service: %w", err)
	}
	if app.userService, err = service.NewUserService(userStore, logger); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if app.articleService, err = service.NewArticleService(articleStore, logger); err != nil {
		return nil, fmt.Errorf("failed to create article service: %w", err)
	}
	app.commentService, err = service.NewCommentService(db, articleStore, commentStore, userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	return app, nil
}

// setupRouter builds the router from the application's services.
func (app *application) setupRouter() *chi.Mux {
	return newRouter(routerDeps{
		logger:         app.logger,
		descriptions:   app.descriptions,
		topicService:   app.topicService,
		userService:    app.userService,
		articleService: app.articleService,
		commentService: app.commentService,
		rateLimitRPS:   app.config.Server.RateLimitRPS,
		rateLimitBurst: app.config.Server.RateLimitBurst,
	})
}
