package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/config"
	myHTTP "github.com/MKhiriev/go-task-manager/internal/handler/http"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/server"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("task-manager-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// the task cache is optional: no address means every read hits the DB
	var taskCache *cache.Cache
	if cfg.Storage.Redis.Addr != "" {
		taskCache, err = cache.NewConnectRedis(ctx, cfg.Storage.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer taskCache.Close()
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(*storages, taskCache, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
