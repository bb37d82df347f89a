package service

import (
	"context"
	"os"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DTOs for request validation

type SignupRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse returns an account without its credential.
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	runner   repository.ExclusiveRunner
}

func NewUserService(userRepo repository.UserRepository, runner repository.ExclusiveRunner) UserService {
	return &userService{userRepo: userRepo, runner: runner}
}

// Signup registers an account with a unique username. Credentials are kept
// as entered; matching stays plain text in this system.
func (s *userService) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	var created UserResponse
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		if !model.ValidRole(req.Role) {
			return ErrInvalidRole
		}
		if s.userRepo.FindByUsername(req.Username) != nil {
			return ErrUsernameTaken
		}
		s.userRepo.Add(model.User{
			Username: req.Username,
			Password: req.Password,
			Role:     req.Role,
		})
		created = UserResponse{Username: req.Username, Role: req.Role}
		return nil
	})
	return created, err
}

// Login matches role, username and password against the directory and
// issues a signed session token. The matched account is also persisted as
// the current user, mirroring the single-operator session model.
func (s *userService) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var res TokenResponse
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		user := s.userRepo.FindByUsername(req.Username)
		if user == nil || user.Password != req.Password || user.Role != req.Role {
			return ErrInvalidCredentials
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  user.Username,
			"role": user.Role,
			"jti":  uuid.NewString(),
			"exp":  time.Now().Add(24 * time.Hour).Unix(),
		})

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_super_secret_key"
		}
		signed, signErr := token.SignedString([]byte(secret))
		if signErr != nil {
			return signErr
		}

		s.userRepo.SaveCurrentUser(*user)
		res = TokenResponse{
			Token: signed,
			User:  UserResponse{Username: user.Username, Role: user.Role},
		}
		return nil
	})
	return res, err
}

func (s *userService) Logout(ctx context.Context) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		s.userRepo.ClearCurrentUser()
		return nil
	})
}

func (s *userService) CurrentUser(ctx context.Context) (*UserResponse, error) {
	var res *UserResponse
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		if user := s.userRepo.CurrentUser(); user != nil {
			res = &UserResponse{Username: user.Username, Role: user.Role}
		}
		return nil
	})
	return res, err
}
