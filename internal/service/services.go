package service

import (
	"github.com/MKhiriev/go-blog-list/internal/config"
	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/utils"
	"github.com/MKhiriev/go-blog-list/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BlogService    BlogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()
	idGenerator := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(storages.MaintenanceRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, idGenerator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		BlogService:    NewBlogService(storages.BlogRepository, validator, idGenerator, logger),
		AppInfoService: appInfoService,
	}, nil
}
