package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"admin_backend/internal/feature/products/domain/entity"
	"admin_backend/internal/feature/products/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching of List and Search.
type CachingProductRepository struct {
	usecase.ProductRepository
	s *store
}

var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository wraps inner. A nil rdb disables caching.
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, rec LookupRecorder) *CachingProductRepository {
	return &CachingProductRepository{ProductRepository: inner, s: newStore(rdb, ttl, "products", rec)}
}

func (c *CachingProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	if !c.s.enabled() {
		return c.ProductRepository.List(ctx)
	}
	key := c.s.listKey()
	var out []entity.Product
	if c.s.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.ProductRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	c.s.set(ctx, key, out)
	return out, nil
}

// ListForWrite always reads inner so uniqueness checks never see a stale listing.
func (c *CachingProductRepository) ListForWrite(ctx context.Context) ([]entity.Product, error) {
	return c.ProductRepository.ListForWrite(ctx)
}

func (c *CachingProductRepository) Search(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	if !c.s.enabled() {
		return c.ProductRepository.Search(ctx, f)
	}
	key := c.s.searchKey(f.Name, f.Owner, f.Category, f.Page, f.Size)
	var cached page[entity.Product]
	if c.s.get(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}
	items, total, err := c.ProductRepository.Search(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	c.s.set(ctx, key, page[entity.Product]{Items: items, Total: total})
	return items, total, nil
}

func (c *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return c.after(ctx, c.ProductRepository.Create(ctx, p))
}

func (c *CachingProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return c.after(ctx, c.ProductRepository.Update(ctx, p))
}

func (c *CachingProductRepository) DeleteByID(ctx context.Context, id uint) error {
	return c.after(ctx, c.ProductRepository.DeleteByID(ctx, id))
}

func (c *CachingProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.ProductRepository.DeleteAll(ctx)
	return n, c.after(ctx, err)
}

func (c *CachingProductRepository) after(ctx context.Context, err error) error {
	if err == nil {
		c.s.invalidate(ctx)
	}
	return err
}
