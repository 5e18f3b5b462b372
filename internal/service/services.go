package service

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BlogService    BlogService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of the given storages.
// Input-facing services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	hasher := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	idGenerator := utils.NewUUIDGenerator()

	authService := NewAuthService(storages.UserRepository, hasher, idGenerator, cfg.App, logger)
	userService := NewUserService(storages.UserRepository, storages.FollowRepository, storages.SavedPostRepository, hasher, logger)
	blogService := NewBlogService(storages.PostRepository, idGenerator, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		UserService:    NewUserValidationService(validator).Wrap(userService),
		BlogService:    NewBlogValidationService(validator).Wrap(blogService),
		AppInfoService: appInfoService,
	}, nil
}
