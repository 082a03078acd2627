package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/feature/users/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of List and Search.
// Every successful write invalidates the whole users namespace.
type CachingUserRepository struct {
	usecase.UserRepository
	s *store
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository wraps inner. A nil rdb disables caching; ttl <= 0 means DefaultTTL.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, rec LookupRecorder) *CachingUserRepository {
	return &CachingUserRepository{UserRepository: inner, s: newStore(rdb, ttl, "users", rec)}
}

// List returns the cached listing or loads and caches it.
func (c *CachingUserRepository) List(ctx context.Context) ([]entity.User, error) {
	if !c.s.enabled() {
		return c.UserRepository.List(ctx)
	}
	key := c.s.listKey()
	var out []entity.User
	if c.s.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	c.s.set(ctx, key, out)
	return out, nil
}

// ListForWrite always reads inner so uniqueness checks never see a stale listing.
func (c *CachingUserRepository) ListForWrite(ctx context.Context) ([]entity.User, error) {
	return c.UserRepository.ListForWrite(ctx)
}

// Search returns a cached page or loads and caches it.
func (c *CachingUserRepository) Search(ctx context.Context, f entity.UserFilter) ([]entity.User, int64, error) {
	if !c.s.enabled() {
		return c.UserRepository.Search(ctx, f)
	}
	key := c.s.searchKey(f.Name, f.Category, f.Page, f.Size)
	var cached page[entity.User]
	if c.s.get(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}
	items, total, err := c.UserRepository.Search(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	c.s.set(ctx, key, page[entity.User]{Items: items, Total: total})
	return items, total, nil
}

func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.after(ctx, c.UserRepository.Create(ctx, u))
}

func (c *CachingUserRepository) Update(ctx context.Context, u *entity.User) error {
	return c.after(ctx, c.UserRepository.Update(ctx, u))
}

func (c *CachingUserRepository) DeleteByID(ctx context.Context, id uint) error {
	return c.after(ctx, c.UserRepository.DeleteByID(ctx, id))
}

func (c *CachingUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	return c.after(ctx, c.UserRepository.DeleteByEmail(ctx, email))
}

func (c *CachingUserRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.UserRepository.DeleteAll(ctx)
	return n, c.after(ctx, err)
}

func (c *CachingUserRepository) after(ctx context.Context, err error) error {
	if err == nil {
		c.s.invalidate(ctx)
	}
	return err
}
