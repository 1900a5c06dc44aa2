package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/jobtrackhq/jobtrack-go/internal/api/middleware"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
	"github.com/jobtrackhq/jobtrack-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const tokenLifetime = 24 * time.Hour

// UserService handles account registration and credential issuance.
type UserService struct {
	repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{repos: repos}
}

// RegisterUser creates a standard account with a bcrypt-hashed
// password.
func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.repos.User.FindByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Role:     user.RoleStandard,
		IsActive: true,
	}

	return s.repos.User.Create(newUser)
}

// ListUsers returns every account (admin view).
func (s *UserService) ListUsers() ([]user.User, error) {
	return s.repos.User.FindAll()
}

// LoginUser verifies credentials and mints a bearer token.
func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	u, err := s.repos.User.FindByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, tokenLifetime)
	if err != nil {
		return user.User{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return u, token, nil
}
