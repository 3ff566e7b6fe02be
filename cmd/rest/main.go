package main

import (
	"context"
	"log"

	"newsroom-be/internal/bootstrap"
	"newsroom-be/internal/config"
	"newsroom-be/internal/server"
	"newsroom-be/internal/tracer"
	"newsroom-be/pkg/database"
)

func main() {
	// 0. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependency container
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
