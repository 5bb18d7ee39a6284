package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"greenplot/internal/advisor"
	"greenplot/internal/catalog"
	"greenplot/internal/feed"
	"greenplot/internal/progress"
	"greenplot/internal/upload"
	"greenplot/pkg/utils"
)

func main() {
	cfg := utils.Load()

	// The catalog is the one hard startup dependency; everything after
	// this point degrades instead of failing.
	plants := catalog.MustLoad(cfg.CatalogPath)
	log.Printf("loaded plant catalog: %d regions from %s", len(plants.RegionNames()), cfg.CatalogPath)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open ledger store (%s): %v", cfg.LedgerBackend, err)
	}
	defer store.Close()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := feed.NewHub()
	router.GET("/ws", feed.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"ledger":     cfg.LedgerBackend,
			"regions":    len(plants.RegionNames()),
			"ws_clients": hub.Count(),
		})
	})

	// Assessment (stateless)
	engine := advisor.New(plants)
	advisor.NewHandler(engine).RegisterRoutes(router.Group("/"))

	// Progress ledger
	ledger := progress.NewLedger(store)
	photos := upload.NewSaver(cfg.UploadDir, cfg.UploadMaxBytes)
	progress.NewHandler(ledger, photos, hub).RegisterRoutes(router.Group("/"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}

// openStore picks the ledger backend from configuration. The JSON file
// store is the default; sqlite and postgres cover heavier deployments.
func openStore(cfg utils.Config) (progress.Store, error) {
	switch cfg.LedgerBackend {
	case "sqlite":
		return progress.NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		return progress.NewPostgresStore(cfg.DSN())
	default:
		return progress.NewFileStore(cfg.LedgerPath)
	}
}
