package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
	pkgAuth "github.com/carsline/api/internal/pkg/auth"
)

// AuthUseCase handles sign-in, token management and user administration.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Login validates credentials, stamps the last access time and returns an
// auth token for the user.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.Active {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := u.users.TouchLastLogin(ctx, usr.ID, now); err != nil {
		return nil, "", err
	}
	usr.LastLogin = &now

	token, err := u.tokens.IssueToken(usr.ID, usr.RoleName)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// CreateUserInput carries the fields for a new workshop user.
type CreateUserInput struct {
	FullName string
	Username string
	Password string
	RoleID   int64
}

// CreateUser registers a new user on behalf of an administrator.
func (u *AuthUseCase) CreateUser(ctx context.Context, adminID int64, in CreateUserInput) (*model.User, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	switch {
	case in.FullName == "":
		return nil, fmt.Errorf("%w: full name is required", domainErrors.ErrValidation)
	case in.Username == "":
		return nil, fmt.Errorf("%w: username is required", domainErrors.ErrValidation)
	case len(in.Password) < 6:
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domainErrors.ErrValidation)
	case in.RoleID <= 0:
		return nil, fmt.Errorf("%w: role id is required", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr := &model.User{
		FullName:     in.FullName,
		Username:     in.Username,
		PasswordHash: hash,
		RoleID:       in.RoleID,
		Active:       true,
		CreatedByID:  &adminID,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}

	return usr, nil
}

// Users lists every user; restricted to administrators.
func (u *AuthUseCase) Users(ctx context.Context, adminID int64) ([]model.User, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

// Roles lists the assignable roles.
func (u *AuthUseCase) Roles(ctx context.Context) ([]model.Role, error) {
	return u.users.Roles(ctx)
}

// ParseToken extracts the caller identity from the provided token.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func (u *AuthUseCase) requireAdmin(ctx context.Context, userID int64) error {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrForbidden
		}
		return err
	}
	if usr.RoleName != model.RoleAdmin {
		return domainErrors.ErrForbidden
	}
	return nil
}
