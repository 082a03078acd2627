// Package usecase implements the validated CRUD service for users:
// rule evaluation, duplicate detection and persistence through UserRepository.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/paging"
)

// UserRepository abstracts the persistence layer for users.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// List returns every user in store order.
	List(ctx context.Context) ([]entity.User, error)

	// ListForWrite returns every user read directly from the store, never from a cache.
	// The duplicate check runs against it.
	ListForWrite(ctx context.Context) ([]entity.User, error)

	// Search returns one page of users matching f, plus the total match count.
	Search(ctx context.Context, f entity.UserFilter) ([]entity.User, int64, error)

	// FindByID returns ErrUserNotFound when no user has id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Create persists u and fills in its generated ID and timestamps.
	Create(ctx context.Context, u *entity.User) error

	// Update replaces the mutable fields of the user with u.ID and refreshes u from the store.
	Update(ctx context.Context, u *entity.User) error

	// DeleteByID returns ErrUserNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id uint) error

	// DeleteByEmail returns ErrUserNotFound when nothing was deleted.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteAll removes every user in one statement and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// UserUsecase is the user resource service. Every mutation is validated and
// duplicate-checked before the store is touched, so rejected writes never
// leave partial state behind.
type UserUsecase struct {
	repo    UserRepository
	profile Profile
}

// NewUserUsecase creates a UserUsecase. profile is applied to Create and UpdateByID;
// Register always uses ProfileRegister.
func NewUserUsecase(repo UserRepository, profile Profile) *UserUsecase {
	return &UserUsecase{repo: repo, profile: profile}
}

// List returns all users.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Search returns a page of users matching f. The returned filter carries the
// normalized page and size.
func (u *UserUsecase) Search(ctx context.Context, f entity.UserFilter) ([]entity.User, int64, entity.UserFilter, error) {
	f.Page, f.Size, _ = paging.Normalize(f.Page, f.Size)
	users, total, err := u.repo.Search(ctx, f)
	if err != nil {
		return nil, 0, f, fmt.Errorf("search users: %w", err)
	}
	return users, total, f, nil
}

// Create validates in with the configured profile and stores a new user.
func (u *UserUsecase) Create(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	return u.create(ctx, in, u.profile)
}

// Register is the sign-up flow; it applies ProfileRegister.
func (u *UserUsecase) Register(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	return u.create(ctx, in, ProfileRegister)
}

func (u *UserUsecase) create(ctx context.Context, in entity.UserInput, p Profile) (*entity.User, error) {
	user, err := validateUser(in, p)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.ListForWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if r := FindUserConflict(user, existing, 0); r != ConflictNone {
		return nil, apperr.NewConflict(r.Message())
	}

	if err := u.repo.Create(ctx, &user); err != nil {
		return nil, storeError("create user", err)
	}
	return &user, nil
}

// UpdateByID replaces every field of user id with in (full replacement).
func (u *UserUsecase) UpdateByID(ctx context.Context, id uint, in entity.UserInput) (*entity.User, error) {
	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError("find user", err)
	}

	user, err := validateUser(in, u.profile)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.ListForWrite(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if r := FindUserConflict(user, existing, id); r != ConflictNone {
		return nil, apperr.NewConflict(r.Message())
	}

	user.ID = current.ID
	user.CreatedAt = current.CreatedAt
	if err := u.repo.Update(ctx, &user); err != nil {
		return nil, storeError("update user", err)
	}
	return &user, nil
}

// DeleteByID removes user id or returns ErrUserNotFound.
func (u *UserUsecase) DeleteByID(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrUserNotFound
	}
	return storeError("delete user", u.repo.DeleteByID(ctx, id))
}

// DeleteByEmail removes the user with email or returns ErrUserNotFound.
func (u *UserUsecase) DeleteByEmail(ctx context.Context, email string) error {
	if normalizeEmail(email) == "" {
		return ErrUserNotFound
	}
	return storeError("delete user", u.repo.DeleteByEmail(ctx, email))
}

// DeleteAll empties the user set. It succeeds on an empty set.
func (u *UserUsecase) DeleteAll(ctx context.Context) (int64, error) {
	n, err := u.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all users: %w", err)
	}
	return n, nil
}

// ValidateField checks a single field under p and returns its first message, or "".
func (u *UserUsecase) ValidateField(field, value string, p Profile) string {
	return Rules(p).ValidateField(field, value)
}

// DefaultProfile returns the profile applied to Create and UpdateByID.
func (u *UserUsecase) DefaultProfile() Profile {
	return u.profile
}

func validateUser(in entity.UserInput, p Profile) (entity.User, error) {
	if errs := Rules(p).Validate(in.Values()); len(errs) > 0 {
		return entity.User{}, errs
	}
	return entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Category: in.Category,
	}, nil
}

// storeError keeps not-found and conflict errors intact and wraps everything else.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
