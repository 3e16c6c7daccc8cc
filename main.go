package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nerzal/gocloak/v13"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kova98/redd/client"
	"github.com/kova98/redd/config"
	"github.com/kova98/redd/data"
	"github.com/kova98/redd/data/repos"
	"github.com/kova98/redd/handlers"
	"github.com/kova98/redd/sources"
)

var auth *handlers.AuthHandler

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpClient, err := client.NewHTTPClient(ctx, client.Credentials{
		ClientID:     config.Config.RedditClientID,
		ClientSecret: config.Config.RedditClientSecret,
		TokenURL:     config.Config.RedditTokenURL,
		UserAgent:    config.Config.RedditUserAgent,
	}, config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}
	reddit := client.NewClient(logger, httpClient, config.Config.RedditBaseURL, config.Config.RedditUserAgent)

	if config.Config.KeycloakURL != "" {
		auth = handlers.NewAuthHandler(gocloak.NewClient(config.Config.KeycloakURL), config.Config.KeycloakRealm)
	} else {
		slog.Warn("KEYCLOAK_URL not set, API is unauthenticated")
	}

	mux := http.NewServeMux()

	threads := handlers.NewThreadHandler(reddit)
	mux.HandleFunc("GET /threads/{article}", private(threads.GetThread))
	mux.Handle("GET /metrics", promhttp.Handler())

	var db *sqlx.DB
	if config.Config.ArchiveEnabled() {
		db, err = sqlx.Connect("postgres", config.Config.PostgresURL)
		if err != nil {
			slog.Error("failed to connect to db", "error", err)
			os.Exit(1)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := data.RunMigrations(db.DB); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		messageRepo := repos.NewMessageRepo(db)
		messages := handlers.NewMessageHandler(messageRepo)
		mux.HandleFunc("GET /messages", private(messages.GetMessages))

		poller := sources.NewInboxPoller(
			logger,
			reddit,
			messageRepo,
			sources.NewLanguageDetector(),
			config.Config.PollCategories,
			config.Config.MarkRead,
			time.Duration(config.Config.PollIntervalSeconds)*time.Second,
		)
		go poller.StartPolling(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		if db != nil {
			if err := db.Close(); err != nil {
				slog.Error("failed to close database connection", "error", err)
			}
		}
		os.Exit(0)
	}()

	slog.Info("Starting server", "addr", config.Config.ListenAddr)
	err = http.ListenAndServe(config.Config.ListenAddr, mux)
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func private(handler handlers.Handler) http.HandlerFunc {
	if auth == nil {
		return public(handler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		result := auth.Authorize(r.Context(), r.Header.Get("Authorization"))
		if result.Code != http.StatusOK {
			slog.Debug("unauthorized request", "path", r.URL.Path)
			writeResult(w, result)
			return
		}

		caller := result.Body.(handlers.Caller)
		slog.Debug("authorized request", "path", r.URL.Path, "caller", caller.Name)

		public(handler)(w, r)
	}
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Error != nil && res.Code >= http.StatusInternalServerError {
		slog.Error("request failed", "code", res.Code, "error", res.Error.Error())
	}
}
