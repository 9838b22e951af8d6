package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"cat-collector/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PasswordHasher lo implementa *password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) (bool, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

type SignupInput struct {
	Username string
	Password string
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if err := validUsername(username); err != nil {
		return User{}, err
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate implementa auth.PasswordAuthenticator.
// Usuario inexistente y contraseña incorrecta devuelven el mismo error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (auth.Claims, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.Claims{}, ErrInvalidCredentials
		}
		return auth.Claims{}, err
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil || !ok {
		return auth.Claims{}, ErrInvalidCredentials
	}

	return auth.Claims{UserID: u.ID, Username: u.Username}, nil
}

// validUsername: letras, dígitos y @/./+/-/_ (hasta 150).
func validUsername(v string) error {
	if v == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(v) > MaxUsernameLen {
		return fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, MaxUsernameLen)
	}
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@.+-_", r) {
			continue
		}
		return fmt.Errorf("%w: username may contain only letters, digits and @/./+/-/_", ErrInvalidInput)
	}
	return nil
}
