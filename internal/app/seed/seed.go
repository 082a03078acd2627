// Package seed imports users and products from a JSON document through the
// validated usecases, so seeded rows obey the same rules as API writes.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	productentity "admin_backend/internal/feature/products/domain/entity"
	productdto "admin_backend/internal/feature/products/transport/http/dto"
	userentity "admin_backend/internal/feature/users/domain/entity"
	userdto "admin_backend/internal/feature/users/transport/http/dto"
	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/ratelimiter"
	"admin_backend/internal/shared/validation"
)

// UserCreator is the part of the user usecase used by Runner.
type UserCreator interface {
	Create(ctx context.Context, in userentity.UserInput) (*userentity.User, error)
}

// ProductCreator is the part of the product usecase used by Runner.
type ProductCreator interface {
	Create(ctx context.Context, in productentity.ProductInput) (*productentity.Product, error)
}

// Document is the seed file layout. Records use the same shape as the add payloads.
type Document struct {
	Users    []userdto.UserPayload       `json:"users"`
	Products []productdto.ProductPayload `json:"products"`
}

// Result counts what Runner.Run did.
type Result struct {
	UsersCreated    int
	ProductsCreated int
	// Skipped counts records rejected by validation or as duplicates.
	Skipped int
}

// Runner imports seed documents.
type Runner struct {
	users    UserCreator
	products ProductCreator
	pace     ratelimiter.Limiter
	log      *zap.Logger
}

// NewRunner creates a Runner. pace throttles writes; nil means unlimited.
func NewRunner(users UserCreator, products ProductCreator, pace ratelimiter.Limiter, log *zap.Logger) *Runner {
	if pace == nil {
		pace = ratelimiter.New(0, 0)
	}
	return &Runner{users: users, products: products, pace: pace, log: log}
}

// Run decodes a Document from r and creates every record.
// Rejected records are logged and skipped so a seed can be re-applied;
// any other error stops the run.
func (s *Runner) Run(ctx context.Context, r io.Reader) (Result, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Result{}, fmt.Errorf("decode seed: %w", err)
	}

	var res Result
	for i, p := range doc.Users {
		if err := s.pace.Wait(ctx); err != nil {
			return res, err
		}
		_, err := s.users.Create(ctx, p.Input())
		switch {
		case err == nil:
			res.UsersCreated++
		case rejected(err):
			res.Skipped++
			s.log.Warn("user skipped", zap.Int("index", i), zap.String("email", string(p.Email)), zap.String("reason", err.Error()))
		default:
			return res, fmt.Errorf("user %d: %w", i, err)
		}
	}

	for i, p := range doc.Products {
		if err := s.pace.Wait(ctx); err != nil {
			return res, err
		}
		_, err := s.products.Create(ctx, p.Input())
		switch {
		case err == nil:
			res.ProductsCreated++
		case rejected(err):
			res.Skipped++
			s.log.Warn("product skipped", zap.Int("index", i), zap.String("name", p.Name), zap.String("reason", err.Error()))
		default:
			return res, fmt.Errorf("product %d: %w", i, err)
		}
	}
	return res, nil
}

func rejected(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs) || errors.Is(err, apperr.ErrConflict)
}
