package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/llm/openrouter"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/telemetry"
)

// App holds the wired dependencies for the API process.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	ResumeService *resume.Service
	LLMClient     llm.Client
	ChatLogs      chat.LogsRepo
	ChatService   *chat.Service
	ResumeHandler *resume.Handler
	ChatHandler   *chat.Handler
}

// Build prepares shared dependencies and the router. Everything is
// constructed once here and passed by reference; nothing reads globals at
// request time.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		ChatHandler:   app.ChatHandler,
	})

	return app, nil
}

// buildDB opens the database and applies migrations. In dev-like
// environments any failure falls back to the in-memory chat log so the API
// stays usable without a database.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using the in-memory chat log")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Open(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using the in-memory chat log: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB, db.Dialect(cfg.DatabaseURL)); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using the in-memory chat log: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) error {
	var logs chat.LogsRepo
	if app.DB != nil {
		switch db.Dialect(app.Config.DatabaseURL) {
		case db.DialectSQLite:
			logs = &chat.SQLiteRepo{DB: app.DB}
		default:
			logs = &chat.PGRepo{DB: app.DB}
		}
	} else {
		logs = chat.NewMemoryRepo()
	}

	resumeSvc := resume.NewService(app.Config.ResumePath)

	// Without an API key the process still serves /resume and /health; only
	// /chat degrades to 502.
	llmClient := llm.Client(llm.Unconfigured{})
	if app.Config.OpenRouterAPIKey != "" {
		client, err := openrouter.New(openrouter.Config{
			APIKey:   app.Config.OpenRouterAPIKey,
			Model:    app.Config.OpenRouterModel,
			BaseURL:  config.OpenRouterBaseURL,
			SiteURL:  app.Config.SiteURL,
			SiteName: app.Config.SiteName,
		})
		if err != nil {
			return err
		}
		llmClient = client
	} else {
		telemetry.Warn("llm.unconfigured", map[string]any{
			"reason": "OPENROUTER_API_KEY empty",
		})
	}

	chatSvc := &chat.Service{Resume: resumeSvc, LLM: llmClient, Logs: logs}

	app.ResumeService = resumeSvc
	app.LLMClient = llmClient
	app.ChatLogs = logs
	app.ChatService = chatSvc
	app.ResumeHandler = resume.NewHandler(resumeSvc)
	app.ChatHandler = chat.NewHandler(chatSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
