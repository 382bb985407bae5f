// Package main runs the newsroom API server. Besides serving, the binary can
// apply schema migrations (-migrate) or print the route table (-routes).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/docgen"
	"github.com/phrazzld/newsroom-api/internal/config"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/platform/postgres"
)

// options holds the parsed command-line flags.
type options struct {
	configPath string
	migrate    string
	routes     bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("newsroom-api", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./config.yaml if present)")
	fs.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, down, status, reset, redo) and exit")
	fs.BoolVar(&opts.routes, "routes", false, "print the route documentation as markdown and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.migrate {
	case "", postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus,
		postgres.MigrateReset, postgres.MigrateRedo:
	default:
		return options{}, fmt.Errorf("unknown migrate command %q", opts.migrate)
	}

	return opts, nil
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("newsroom-api exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if opts.routes {
		fmt.Println(docgen.MarkdownRoutesDoc(newRouter(routerDeps{}), docgen.MarkdownOpts{
			ProjectPath: "github.com/phrazzld/newsroom-api",
			Intro:       "Routes served by the newsroom API.",
		}))
		return nil
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_rps", cfg.Server.RateLimitRPS)

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if opts.migrate != "" {
		return postgres.Migrate(ctx, db, opts.migrate, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return err
	}
	return app.startHTTPServer(ctx, app.setupRouter())
}
