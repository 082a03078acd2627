// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/platform/db"
	"admin_backend/internal/shared/paging"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
// MySQL / PostgreSQL / SQLite のいずれでも動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// List は全ユーザーをID順に返します。
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var rows []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

// ListForWrite は List と同じです。ストアを直接読むため重複チェックに使えます。
func (r *userGorm) ListForWrite(ctx context.Context) ([]entity.User, error) {
	return r.List(ctx)
}

// Search は名前（部分一致・大文字小文字無視）とカテゴリで絞り込み、1ページ分と総件数を返します。
func (r *userGorm) Search(ctx context.Context, f entity.UserFilter) ([]entity.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&UserModel{})
	if s := strings.TrimSpace(f.Name); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Category); s != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(s))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	_, size, offset := paging.Normalize(f.Page, f.Size)
	var rows []UserModel
	if err := q.Order("id ASC").Limit(size).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toEntities(rows), total, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	u := m.ToEntity()
	return &u, nil
}

// Create はユーザーをデータベースに追加し、採番されたIDとタイムスタンプをuに反映します。
// ユニークインデックス違反の場合、usecase.ErrDuplicateUserを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	m := UserModelFromEntity(u)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	*u = m.ToEntity()
	return nil
}

// Update はu.IDのユーザーの全フィールドを置き換えます。IDとCreatedAtは変更されません。
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m UserModel
		if err := tx.Where("id = ?", u.ID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		m.Name = u.Name
		m.Email = u.Email
		m.Phone = u.Phone
		m.Category = u.Category
		if err := tx.Save(&m).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return usecase.ErrDuplicateUser
			}
			return err
		}
		*u = m.ToEntity()
		return nil
	})
}

// DeleteByID はIDでユーザーを物理削除します。
// 該当ユーザーがいない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// DeleteByEmail はメールアドレス（大文字小文字無視）でユーザーを削除します。
func (r *userGorm) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Delete(&UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// DeleteAll は全ユーザーを1文で削除し、削除件数を返します。
func (r *userGorm) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&UserModel{})
	return res.RowsAffected, res.Error
}

func toEntities(rows []UserModel) []entity.User {
	out := make([]entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out
}
