package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/internal/database"
	"github.com/graceview/graceview-api/internal/server"
	"github.com/graceview/graceview-api/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	db := database.New(cfg)
	defer db.Close()

	if err := database.Migrate(db.DB()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	library, err := bible.LoadDir(cfg.BibleDataDir)
	if err != nil {
		log.Fatalf("loading bible datasets from %s failed: %v", cfg.BibleDataDir, err)
	}

	srv := server.NewServer(db, library, cfg)
	httpServer := srv.HTTPServer()

	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	go func() {
		log.Printf("GraceView api listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
