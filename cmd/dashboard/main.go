package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vin-dashboard/internal/api"
	"vin-dashboard/internal/api/handler"
	"vin-dashboard/internal/catalog"
	"vin-dashboard/internal/config"
	"vin-dashboard/internal/middleware"
	"vin-dashboard/internal/querylog"
	"vin-dashboard/internal/store"
	"vin-dashboard/internal/watch"
)

// @title VIN Dashboard API
// @version 1.0
// @description Internal dashboards for VIN statistics lookup and query-log aggregation
// @BasePath /api/v1
func main() {
	// .env is optional, real config comes from config.yaml
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	if err := store.InitDB(cfg.DB.Path); err != nil {
		log.Fatalf("store init error: %v", err)
	}
	defer store.Close()

	catalogSvc := catalog.NewService(cfg.Data.Dir)
	queriesSvc := querylog.NewService(cfg.Data.Dir)
	sessions := middleware.NewSessions(12 * time.Hour)

	if cfg.Data.Watch {
		stop, err := watch.Watch(cfg.Data.Dir, catalogSvc, queriesSvc)
		if err != nil {
			log.Fatalf("watcher error: %v", err)
		}
		defer stop()
	}

	h := &handler.Handler{
		Catalog:  catalogSvc,
		Queries:  queriesSvc,
		Sessions: sessions,
		Secret:   cfg.Auth.Secret,
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
