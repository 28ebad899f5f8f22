package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/handler"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/server"
	"github.com/MKhiriev/go-blog-list/internal/service"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-blog-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.New("go-blog-server", logger.Options{
		Level:  cfg.App.LogLevel,
		Pretty: cfg.App.Environment == config.EnvDevelopment,
	})
	log.Debug().Str("env", cfg.App.Environment).Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
