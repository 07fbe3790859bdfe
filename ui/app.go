package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"elemdex/domain/catalog"
	"elemdex/internal/session"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the explorer web application
type App struct {
	router    *chi.Mux
	dataset   *catalog.Dataset
	roles     catalog.RoleMap
	sessions  *session.Manager
	templates *template.Template
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates the explorer application over an already-loaded dataset
func NewApp(ds *catalog.Dataset, roles catalog.RoleMap, sessions *session.Manager) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"buildLink": func(key string) string {
			return catalog.BuildLink(key)
		},
		"fmtNumber": func(v float64) string {
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%.2f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		dataset:   ds,
		roles:     roles,
		sessions:  sessions,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/element/{key}", a.handleElementDetail)
	a.router.Get("/overview", a.handleOverview)
	a.router.Get("/export.csv", a.handleExport)

	a.router.Post("/favorites/toggle", a.handleToggleFavorite)
	a.router.Post("/compare/toggle", a.handleToggleCompare)
}

// Router exposes the chi router for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}
