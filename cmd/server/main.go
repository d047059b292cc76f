package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-gate/internal/adapter"
	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/handler"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/server"
	"github.com/MKhiriev/resume-gate/internal/service"
	"github.com/MKhiriev/resume-gate/internal/store"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resume-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("bucket", cfg.Resume.Bucket).
		Str("file_key", cfg.Resume.ObjectKey).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	linkIssuer, err := adapter.NewS3LinkIssuer(ctx, cfg.Resume, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating link issuer")
	}

	services, err := service.NewServices(storages, linkIssuer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
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
