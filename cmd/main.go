package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ldnsports/ldnsports_api/config"
	deps "github.com/ldnsports/ldnsports_api/internal/debs"
	api "github.com/ldnsports/ldnsports_api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}

	if cfg.AdminEmails != "" {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.SeedAdmins(seedCtx, cfg.AdminEmails); err != nil {
			log.Printf("failed to seed admin allowlist: %v", err)
		}
		cancel()
	}

	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown error:", err)
	}
	deps.DB.Close()
	log.Println("Database connections closed.")
}
