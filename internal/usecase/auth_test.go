package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	pkgAuth "github.com/carsline/api/internal/pkg/auth"
	"github.com/carsline/api/internal/test"
	"github.com/carsline/api/internal/usecase"
)

func seedAdmin(t *testing.T, users *test.UserRepositoryStub) *model.User {
	t.Helper()
	admin := &model.User{
		FullName:     "Admin",
		Username:     "admin",
		PasswordHash: "hash:secret",
		RoleID:       1,
		RoleName:     model.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestLogin(t *testing.T) {
	users := test.NewUserRepositoryStub()
	admin := seedAdmin(t, users)
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{
		IssueFn: func(userID int64, role string) (string, error) {
			if userID != admin.ID || role != model.RoleAdmin {
				t.Fatalf("unexpected claims: %d %s", userID, role)
			}
			return "issued", nil
		},
	})

	usr, token, err := uc.Login(context.Background(), "  admin  ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "issued" {
		t.Fatalf("token = %q", token)
	}
	if usr.LastLogin == nil {
		t.Fatal("last login not stamped")
	}
	if len(users.LastLoginCalls) != 1 || users.LastLoginCalls[0] != admin.ID {
		t.Fatalf("last login not persisted: %v", users.LastLoginCalls)
	}
}

func TestLoginRejections(t *testing.T) {
	users := test.NewUserRepositoryStub()
	seedAdmin(t, users)
	inactive := &model.User{Username: "gone", PasswordHash: "hash:pw", Active: false}
	if err := users.Create(context.Background(), inactive); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "admin", ""},
		{"unknown user", "nobody", "secret"},
		{"wrong password", "admin", "bad"},
		{"inactive user", "gone", "pw"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Login(context.Background(), tc.username, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	users := test.NewUserRepositoryStub()
	admin := seedAdmin(t, users)
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	password := test.RandomASCIIString(8, 16)
	created, err := uc.CreateUser(context.Background(), admin.ID, usecase.CreateUserInput{
		FullName: "Service Advisor",
		Username: "advisor",
		Password: password,
		RoleID:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 || created.PasswordHash != "hash:"+password {
		t.Fatalf("unexpected user: %+v", created)
	}
	if created.CreatedByID == nil || *created.CreatedByID != admin.ID {
		t.Fatalf("creator not recorded: %+v", created.CreatedByID)
	}

	if _, err := uc.CreateUser(context.Background(), admin.ID, usecase.CreateUserInput{
		FullName: "Dup",
		Username: "advisor",
		Password: password,
		RoleID:   2,
	}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	users := test.NewUserRepositoryStub()
	admin := seedAdmin(t, users)
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	cases := []struct {
		name string
		in   usecase.CreateUserInput
	}{
		{"missing full name", usecase.CreateUserInput{Username: "x", Password: "longenough", RoleID: 1}},
		{"missing username", usecase.CreateUserInput{FullName: "X", Password: "longenough", RoleID: 1}},
		{"short password", usecase.CreateUserInput{FullName: "X", Username: "x", Password: "12345", RoleID: 1}},
		{"missing role", usecase.CreateUserInput{FullName: "X", Username: "x", Password: "longenough"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateUser(context.Background(), admin.ID, tc.in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	users := test.NewUserRepositoryStub()
	seedAdmin(t, users)
	advisor := &model.User{Username: "advisor", RoleName: "Asesor", Active: true}
	if err := users.Create(context.Background(), advisor); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	in := usecase.CreateUserInput{FullName: "X", Username: "x", Password: "longenough", RoleID: 1}
	if _, err := uc.CreateUser(context.Background(), advisor.ID, in); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.CreateUser(context.Background(), 999, in); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("unknown admin must be forbidden, got %v", err)
	}
}

func TestUsersListRestricted(t *testing.T) {
	users := test.NewUserRepositoryStub()
	admin := seedAdmin(t, users)
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	list, err := uc.Users(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}

	if _, err := uc.Users(context.Background(), 999); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRoles(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.RoleRows = []model.Role{{ID: 1, Name: model.RoleAdmin}, {ID: 2, Name: "Asesor"}}
	uc := usecase.NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})

	roles, err := uc.Roles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
}

func TestParseToken(t *testing.T) {
	uc := usecase.NewAuthUseCase(test.NewUserRepositoryStub(), test.HasherStub{}, test.StrategyStub{
		ParseFn: func(token string) (*pkgAuth.Claims, error) {
			if token != "good" {
				return nil, pkgAuth.ErrInvalidToken
			}
			return &pkgAuth.Claims{UserID: 42, Role: "Asesor"}, nil
		},
	})

	claims, err := uc.ParseToken("good")
	if err != nil || claims.UserID != 42 {
		t.Fatalf("unexpected result: %+v %v", claims, err)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("empty token must be invalid, got %v", err)
	}
	if _, err := uc.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
