package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	studiocms "github.com/buro710/studio-cms"
	"github.com/buro710/studio-cms/cmd/internal/bootstrap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "HTTP listen address")
	driver := fs.String("driver", "sqlite3", "Storage driver (sqlite3 or postgres)")
	dsn := fs.String("dsn", "", "Storage DSN; when empty the server runs on in-memory repositories")
	adminToken := fs.String("admin-token", "", "Shared secret for the admin API; admin routes are not mounted when empty")
	defaultLocale := fs.String("default-locale", "", "Default site locale")
	locales := fs.String("locales", "", "Comma separated list of served locales")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error, fatal)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := studiocms.DefaultConfig()
	cfg.Logging.Level = *logLevel
	if trimmed := strings.TrimSpace(*defaultLocale); trimmed != "" {
		cfg.DefaultLocale = trimmed
	}
	if parsed := bootstrap.SplitLocales(*locales); len(parsed) > 0 {
		cfg.Locales = parsed
	}
	if trimmed := strings.TrimSpace(*dsn); trimmed != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Driver = strings.TrimSpace(*driver)
		cfg.Storage.DSN = trimmed
		cfg.Cache.Enabled = true
	}

	module, err := studiocms.New(cfg)
	if err != nil {
		return fmt.Errorf("initialise studio module: %w", err)
	}

	logger := module.Container().Logger("server")

	if db := module.DB(); db != nil {
		if err := applyMigrations(context.Background(), module); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		if err := module.Settings().Seed(context.Background()); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}

	mux := http.NewServeMux()
	module.MountPublic(mux)

	if token := strings.TrimSpace(*adminToken); token != "" {
		module.MountAdmin(mux, tokenGuard(token))
	} else {
		logger.Warn("admin token not set, admin API disabled")
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// tokenGuard authorizes admin requests carrying the shared secret in the
// X-Admin-Token header.
func tokenGuard(token string) studiocms.AdminGuard {
	return studiocms.AdminGuardFunc(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Admin-Token") != token {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
}

// applyMigrations executes the embedded SQL files in lexical order. Every
// statement is idempotent so reapplying on start is safe.
func applyMigrations(ctx context.Context, module *studiocms.Module) error {
	migrations := studiocms.GetMigrationsFS()
	entries, err := migrations.ReadDir("data/sql/migrations")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		contents, err := migrations.ReadFile("data/sql/migrations/" + name)
		if err != nil {
			return err
		}
		if _, err := module.DB().ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}
