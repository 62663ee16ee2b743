package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthService handles registration, login and token verification.
type AuthService struct {
	users  repository.Users
	tokens *TokenManager
}

func NewAuthService(users repository.Users, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates the input, hashes the password once and persists the
// user, then issues a session token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, "", Validationf("name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", Validationf("please use a valid email address")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, "", Validationf("password must be at least %d characters", minPasswordLength)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", Validationf("email already registered")
	}

	// bcrypt embeds a random per-record salt; hashing happens exactly once,
	// before first persistence.
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Login verifies the credentials by hash comparison and issues a session
// token. Unknown email and wrong password are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// ParseToken verifies a session token and returns the user id it is bound to.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	return s.tokens.Parse(accessToken)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
