package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	productentity "admin_backend/internal/feature/products/domain/entity"
	userentity "admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/ratelimiter"
	"admin_backend/internal/shared/validation"
)

// mockUserCreator はUserCreatorのモック実装です。
type mockUserCreator struct {
	CreateFunc func(ctx context.Context, in userentity.UserInput) (*userentity.User, error)
	got        []userentity.UserInput
}

func (m *mockUserCreator) Create(ctx context.Context, in userentity.UserInput) (*userentity.User, error) {
	m.got = append(m.got, in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &userentity.User{}, nil
}

// mockProductCreator はProductCreatorのモック実装です。
type mockProductCreator struct {
	CreateFunc func(ctx context.Context, in productentity.ProductInput) (*productentity.Product, error)
	got        []productentity.ProductInput
}

func (m *mockProductCreator) Create(ctx context.Context, in productentity.ProductInput) (*productentity.Product, error) {
	m.got = append(m.got, in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &productentity.Product{}, nil
}

const doc = `{
  "users": [
    {"name":"Alice","email":"alice@test.com","phone":"0561234567","category":"student"},
    {"name":"Alice 2","email":"alice@test.com","phone":"0597654321","category":"student"},
    {"name":" Bob","email":"bob@test.com","phone":"0590000000","category":"teacher"}
  ],
  "products": [
    {"name":"Shoes","owner":"Bob","category":"clothes","count":5}
  ]
}`

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	users := &mockUserCreator{CreateFunc: func(ctx context.Context, in userentity.UserInput) (*userentity.User, error) {
		switch in.Name {
		case "Alice 2":
			return nil, apperr.NewConflict("Email already exists")
		case " Bob":
			return nil, validation.Errors{{Field: "name", Code: validation.CodeWhitespace, Message: "Name must not start or end with spaces"}}
		}
		return &userentity.User{ID: 1}, nil
	}}
	products := &mockProductCreator{}
	core, logs := observer.New(zap.WarnLevel)

	res, err := NewRunner(users, products, nil, zap.New(core)).Run(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, Result{UsersCreated: 1, ProductsCreated: 1, Skipped: 2}, res)
	require.Len(t, products.got, 1)
	assert.Equal(t, productentity.ProductInput{Name: "Shoes", Owner: "Bob", Category: "clothes", Count: "5"}, products.got[0])
	assert.Equal(t, 2, logs.FilterMessage("user skipped").Len())
}

func TestRunner_Run_StoreErrorStops(t *testing.T) {
	t.Parallel()

	down := errors.New("connection reset")
	users := &mockUserCreator{CreateFunc: func(ctx context.Context, in userentity.UserInput) (*userentity.User, error) {
		return nil, down
	}}
	products := &mockProductCreator{}

	res, err := NewRunner(users, products, nil, zap.NewNop()).Run(context.Background(), strings.NewReader(doc))
	assert.ErrorIs(t, err, down)
	assert.Zero(t, res.UsersCreated)
	assert.Len(t, users.got, 1)
	assert.Empty(t, products.got)
}

func TestRunner_Run_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(&mockUserCreator{}, &mockProductCreator{}, nil, zap.NewNop()).Run(context.Background(), strings.NewReader(`{"users":`))
	assert.ErrorContains(t, err, "decode seed")
}

func TestRunner_Run_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users := &mockUserCreator{}
	_, err := NewRunner(users, &mockProductCreator{}, ratelimiter.New(10, time.Second), zap.NewNop()).Run(ctx, strings.NewReader(doc))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, users.got)
}
