package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/store"
)

type appInfoService struct {
	appVersion string

	maintenanceRepository store.MaintenanceRepository
	logger                *logger.Logger
}

func NewAppInfoService(maintenanceRepository store.MaintenanceRepository, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:            cfg.Version,
		maintenanceRepository: maintenanceRepository,
		logger:                logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if err := s.maintenanceRepository.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func (s *appInfoService) ResetStorage(ctx context.Context) error {
	logger.FromContext(ctx).Warn().Str("func", "*appInfoService.ResetStorage").Msg("resetting storage")
	return s.maintenanceRepository.Reset(ctx)
}
