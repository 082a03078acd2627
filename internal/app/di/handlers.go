package di

import (
	"go.uber.org/zap"

	producthandler "admin_backend/internal/feature/products/transport/handler"
	productusecase "admin_backend/internal/feature/products/usecase"
	userhandler "admin_backend/internal/feature/users/transport/handler"
	userusecase "admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/platform/metrics"
)

// NewUserHandler wires the user usecase and handler on top of repo.
// profile is the validation profile applied to add and update.
func NewUserHandler(repo userusecase.UserRepository, profile string, log *zap.Logger, col *metrics.Collector) *userhandler.UserHandler {
	uc := userusecase.NewUserUsecase(repo, userusecase.ParseProfile(profile))
	if col == nil {
		return userhandler.NewUserHandler(uc, log, nil)
	}
	return userhandler.NewUserHandler(uc, log, col)
}

// NewProductHandler wires the product usecase and handler on top of repo.
func NewProductHandler(repo productusecase.ProductRepository, profile string, log *zap.Logger, col *metrics.Collector) *producthandler.ProductHandler {
	uc := productusecase.NewProductUsecase(repo, productusecase.ParseProfile(profile))
	if col == nil {
		return producthandler.NewProductHandler(uc, log, nil)
	}
	return producthandler.NewProductHandler(uc, log, col)
}
