// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	productadapters "admin_backend/internal/feature/products/adapters"
	productusecase "admin_backend/internal/feature/products/usecase"
	useradapters "admin_backend/internal/feature/users/adapters"
	userusecase "admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/platform/cache"
)

// Models returns the GORM models migrated at startup.
func Models() []any {
	return []any{&useradapters.UserModel{}, &productadapters.ProductModel{}}
}

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the GORM repository is wrapped with the listing cache.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, rec cache.LookupRecorder) userusecase.UserRepository {
	repo := useradapters.NewUserRepository(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, rec)
	}
	return repo
}

// NewProductRepository creates a ProductRepository implementation.
// If Redis is available, the GORM repository is wrapped with the listing cache.
func NewProductRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, rec cache.LookupRecorder) productusecase.ProductRepository {
	repo := productadapters.NewProductRepository(db)
	if rdb != nil {
		return cache.NewCachingProductRepository(rdb, ttl, repo, rec)
	}
	return repo
}
