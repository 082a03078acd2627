package di

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productentity "admin_backend/internal/feature/products/domain/entity"
	productusecase "admin_backend/internal/feature/products/usecase"
	userentity "admin_backend/internal/feature/users/domain/entity"
	userusecase "admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/shared/apperr"
)

// A listing cached before another process wrote must not hide that write from the duplicate check.
func TestUserUsecase_CachedRepository_DuplicateSeesStore(t *testing.T) {
	t.Parallel()

	gdb := setupTestDB(t)
	ctx := context.Background()

	direct := userusecase.NewUserUsecase(NewUserRepository(gdb, nil, 0, nil), userusecase.ProfileStandard)
	_, err := direct.Create(ctx, userentity.UserInput{Name: "Alice", Email: "alice@test.com", Phone: "0561234567", Category: "student"})
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()
	mock.ExpectGet("users:list").SetVal("[]")

	cached := userusecase.NewUserUsecase(NewUserRepository(gdb, rdb, time.Minute, nil), userusecase.ProfileStandard)

	listed, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed, "listing is served from the stale cache entry")

	_, err = cached.Create(ctx, userentity.UserInput{Name: "Alice", Email: "ALICE@test.com", Phone: "0569999999", Category: "student"})
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "Email already exists", err.Error())

	var n int64
	require.NoError(t, gdb.Table("users").Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUsecase_CachedRepository_DuplicateSeesStore(t *testing.T) {
	t.Parallel()

	gdb := setupTestDB(t)
	ctx := context.Background()
	shoes := productentity.ProductInput{Name: "Shoes", Owner: "Bob", Category: "clothes", Count: "5"}

	direct := productusecase.NewProductUsecase(NewProductRepository(gdb, nil, 0, nil), productusecase.ProfileStandard)
	_, err := direct.Create(ctx, shoes)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()
	mock.ExpectGet("products:list").SetVal("[]")

	cached := productusecase.NewProductUsecase(NewProductRepository(gdb, rdb, time.Minute, nil), productusecase.ProfileStandard)

	listed, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = cached.Create(ctx, shoes)
	require.ErrorIs(t, err, productusecase.ErrDuplicateProduct)
	assert.Equal(t, productusecase.DuplicateNameOwnerMessage, err.Error())

	var n int64
	require.NoError(t, gdb.Table("products").Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
