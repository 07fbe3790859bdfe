package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"elemdex/adapters/db/postgres"
	"elemdex/adapters/excel"
	"elemdex/api"
	"elemdex/domain/catalog"
	"elemdex/internal/config"
	apperrors "elemdex/internal/errors"
	"elemdex/internal/session"
	"elemdex/ui"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dataset load happens exactly once; failure is fatal, there is no
	// degraded mode
	table, err := loadCatalogTable(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	records := make([]map[string]string, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = row
	}
	ds := catalog.NewDataset(table.Headers, records)
	roles := catalog.ResolveRoles(ds)
	log.Printf("[main] Catalog ready: %d elements, %d columns", ds.Len(), len(ds.Columns()))

	sessions := session.NewManager()
	app, err := ui.NewApp(ds, roles, sessions)
	if err != nil {
		log.Fatalf("Failed to build UI application: %v", err)
	}
	apiServer := api.NewServer(ds, roles, cfg.Server.GinMode)

	uiSrv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: app.Router()}
	apiSrv := &http.Server{Addr: ":" + cfg.Server.APIPort, Handler: apiServer.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🧪 Explorer UI listening on :%s", cfg.Server.Port)
		if err := uiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Printf("📡 JSON API listening on :%s", cfg.Server.APIPort)
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uiSrv.Shutdown(shutdownCtx)
		apiSrv.Shutdown(shutdownCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shutdown complete")
}

// loadCatalogTable reads the element table from Postgres when a database
// is configured, otherwise from the spreadsheet/CSV file
func loadCatalogTable(ctx context.Context, cfg *config.Config) (*excel.TableData, error) {
	if cfg.Database.URL != "" {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
		if err != nil {
			return nil, apperrors.DatasetLoadFailed("failed to connect to catalog database", err)
		}
		defer db.Close()

		table, err := postgres.NewCatalogSource(db, cfg.Database.Table).ReadData(ctx)
		if err != nil {
			return nil, apperrors.DatasetLoadFailed("failed to load catalog from database", err)
		}
		return table, nil
	}

	table, err := excel.NewDataReader(cfg.Data.DataFile).ReadData()
	if err != nil {
		return nil, apperrors.DatasetLoadFailed("failed to load catalog file", err)
	}
	return table, nil
}
