package service

import (
	"context"
	"errors"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	s := newTestStore(t)
	return NewUserService(repository.NewUserRepository(s), repository.NewExclusiveRunner())
}

func TestSignupAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	svc := newUserService(t)

	created, err := svc.Signup(context.Background(), SignupRequest{
		Username: "prof.rao", Password: "pass123", ConfirmPassword: "pass123", Role: model.RoleFaculty,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.Username != "prof.rao" || created.Role != model.RoleFaculty {
		t.Fatalf("unexpected account %+v", created)
	}

	res, err := svc.Login(context.Background(), LoginRequest{
		Username: "prof.rao", Password: "pass123", Role: model.RoleFaculty,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a session token")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test_secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != "prof.rao" || claims["role"] != model.RoleFaculty {
		t.Fatalf("unexpected claims %+v", claims)
	}

	current, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current == nil || current.Username != "prof.rao" {
		t.Fatalf("expected the session to persist, got %+v", current)
	}
}

func TestSignupRejectsDuplicateAndBadRole(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.Signup(context.Background(), SignupRequest{
		Username: "alice", Password: "p", ConfirmPassword: "p", Role: "superuser",
	}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	if _, err := svc.Signup(context.Background(), SignupRequest{
		Username: "alice", Password: "p", ConfirmPassword: "p", Role: model.RoleStaff,
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), SignupRequest{
		Username: "alice", Password: "q", ConfirmPassword: "q", Role: model.RoleStaff,
	}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginMatchesAllThreeFields(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.Signup(context.Background(), SignupRequest{
		Username: "bob", Password: "secret", ConfirmPassword: "secret", Role: model.RoleStaff,
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	bad := []LoginRequest{
		{Username: "bob", Password: "wrong", Role: model.RoleStaff},
		{Username: "bob", Password: "secret", Role: model.RoleAdmin},
		{Username: "nobody", Password: "secret", Role: model.RoleStaff},
	}
	for _, req := range bad {
		if _, err := svc.Login(context.Background(), req); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %+v: expected ErrInvalidCredentials, got %v", req, err)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.Signup(context.Background(), SignupRequest{
		Username: "carol", Password: "p", ConfirmPassword: "p", Role: model.RoleAdmin,
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{
		Username: "carol", Password: "p", Role: model.RoleAdmin,
	}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	current, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current != nil {
		t.Fatalf("expected no session, got %+v", current)
	}
}
