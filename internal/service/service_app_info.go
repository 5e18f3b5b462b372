package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	health    store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, health store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		health:    health,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// CheckHealth pings the storage backend.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	if err := s.health.PingContext(ctx); err != nil {
		return fmt.Errorf("storage is unreachable: %w", err)
	}
	return nil
}
