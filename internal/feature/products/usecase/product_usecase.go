// Package usecase implements the validated CRUD service for products.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"admin_backend/internal/feature/products/domain/entity"
	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/paging"
)

// ProductRepository abstracts the persistence layer for products.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// ListForWrite reads every product directly from the store, bypassing any cache.
	ListForWrite(ctx context.Context) ([]entity.Product, error)
	Search(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error)
	// FindByID returns ErrProductNotFound when no product has id.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	// DeleteByID returns ErrProductNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ProductUsecase is the product resource service.
type ProductUsecase struct {
	repo    ProductRepository
	profile Profile
}

// NewProductUsecase creates a ProductUsecase. profile is applied to Create and UpdateByID.
func NewProductUsecase(repo ProductRepository, profile Profile) *ProductUsecase {
	return &ProductUsecase{repo: repo, profile: profile}
}

// List returns all products.
func (u *ProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search returns a page of products matching f along with the normalized filter.
func (u *ProductUsecase) Search(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, entity.ProductFilter, error) {
	f.Page, f.Size, _ = paging.Normalize(f.Page, f.Size)
	products, total, err := u.repo.Search(ctx, f)
	if err != nil {
		return nil, 0, f, fmt.Errorf("search products: %w", err)
	}
	return products, total, f, nil
}

// Create validates in with the configured profile and stores a new product.
func (u *ProductUsecase) Create(ctx context.Context, in entity.ProductInput) (*entity.Product, error) {
	return u.create(ctx, in, u.profile)
}

// Register applies ProfileRegister (count >= 1).
func (u *ProductUsecase) Register(ctx context.Context, in entity.ProductInput) (*entity.Product, error) {
	return u.create(ctx, in, ProfileRegister)
}

func (u *ProductUsecase) create(ctx context.Context, in entity.ProductInput, p Profile) (*entity.Product, error) {
	product, err := validateProduct(in, p)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.ListForWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if FindProductConflict(product, existing, 0) {
		return nil, ErrDuplicateProduct
	}

	if err := u.repo.Create(ctx, &product); err != nil {
		return nil, storeError("create product", err)
	}
	return &product, nil
}

// UpdateByID replaces every field of product id with in.
func (u *ProductUsecase) UpdateByID(ctx context.Context, id uint, in entity.ProductInput) (*entity.Product, error) {
	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find product", err)
	}

	product, err := validateProduct(in, u.profile)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.ListForWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if FindProductConflict(product, existing, id) {
		return nil, ErrDuplicateProduct
	}

	product.ID = current.ID
	product.CreatedAt = current.CreatedAt
	if err := u.repo.Update(ctx, &product); err != nil {
		return nil, storeError("update product", err)
	}
	return &product, nil
}

// DeleteByID removes product id or returns ErrProductNotFound.
func (u *ProductUsecase) DeleteByID(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrProductNotFound
	}
	return storeError("delete product", u.repo.DeleteByID(ctx, id))
}

// DeleteAll empties the product set.
func (u *ProductUsecase) DeleteAll(ctx context.Context) (int64, error) {
	n, err := u.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all products: %w", err)
	}
	return n, nil
}

// ValidateField checks a single field under p and returns its first message, or "".
func (u *ProductUsecase) ValidateField(field, value string, p Profile) string {
	return Rules(p).ValidateField(field, value)
}

// DefaultProfile returns the profile applied to Create and UpdateByID.
func (u *ProductUsecase) DefaultProfile() Profile {
	return u.profile
}

func validateProduct(in entity.ProductInput, p Profile) (entity.Product, error) {
	if errs := Rules(p).Validate(in.Values()); len(errs) > 0 {
		return entity.Product{}, errs
	}
	// The rules guarantee Count is an integer.
	count, _ := strconv.Atoi(in.Count)
	return entity.Product{
		Name:     in.Name,
		Owner:    in.Owner,
		Category: in.Category,
		Count:    count,
	}, nil
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
