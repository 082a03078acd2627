// Package adapters はproductsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"admin_backend/internal/feature/products/domain/entity"
	"admin_backend/internal/feature/products/usecase"
	"admin_backend/internal/platform/db"
	"admin_backend/internal/shared/paging"
)

// productGorm はProductRepositoryインターフェースのGORM実装です。
type productGorm struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductRepository は指定されたgorm.DB接続でproductGormの新しいインスタンスを生成します。
func NewProductRepository(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// List は全商品をID順に返します。
func (r *productGorm) List(ctx context.Context) ([]entity.Product, error) {
	var rows []ProductModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

// ListForWrite は List と同じです。ストアを直接読むため重複チェックに使えます。
func (r *productGorm) ListForWrite(ctx context.Context) ([]entity.Product, error) {
	return r.List(ctx)
}

// Search は商品名・オーナー（部分一致）とカテゴリで絞り込みます。
func (r *productGorm) Search(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&ProductModel{})
	if s := strings.TrimSpace(f.Name); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Owner); s != "" {
		q = q.Where("LOWER(owner) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Category); s != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(s))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, size, offset := paging.Normalize(f.Page, f.Size)
	var rows []ProductModel
	if err := q.Order("id ASC").Limit(size).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toEntities(rows), total, nil
}

// FindByID はIDで商品を取得します。存在しない場合はusecase.ErrProductNotFoundを返します。
func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var m ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	p := m.ToEntity()
	return &p, nil
}

// Create は商品を追加し、採番されたIDをpに反映します。
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	if p == nil {
		return errors.New("product is nil")
	}
	m := ProductModelFromEntity(p)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateProduct
		}
		return err
	}
	*p = m.ToEntity()
	return nil
}

// Update はp.IDの商品の全フィールドを置き換えます。
func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	if p == nil {
		return errors.New("product is nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m ProductModel
		if err := tx.Where("id = ?", p.ID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrProductNotFound
			}
			return err
		}
		m.Name = p.Name
		m.Owner = p.Owner
		m.Category = p.Category
		m.Count = p.Count
		if err := tx.Save(&m).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return usecase.ErrDuplicateProduct
			}
			return err
		}
		*p = m.ToEntity()
		return nil
	})
}

// DeleteByID はIDで商品を削除します。
func (r *productGorm) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// DeleteAll は全商品を削除し、削除件数を返します。
func (r *productGorm) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&ProductModel{})
	return res.RowsAffected, res.Error
}

func toEntities(rows []ProductModel) []entity.Product {
	out := make([]entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out
}
