package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bsak/authsvc/internal/domain"
)

const bearerPrefix = "Bearer "

// AuthService orchestrates registration, credential verification, and
// authenticated password changes over a UserRepository.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a USER-role account and returns a freshly issued token.
// The existence check runs before hashing so a duplicate email never pays
// the bcrypt cost; the unique index on email backstops concurrent registers.
func (s *AuthService) Register(ctx context.Context, name, surname, email, password string) (string, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return s.tokens.Generate(user.Email)
}

// Authenticate verifies the email/password pair and returns a token bound
// to the user's email. Unknown emails still pay one hash comparison so the
// response time does not reveal account existence.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return "", &domain.UserNotFoundError{Email: email}
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Generate(user.Email)
}

// ChangePassword replaces the password of the account identified by the
// bearer token in the Authorization header value. It returns the
// acknowledgment message on success. Previously issued tokens stay valid
// until their natural expiry.
func (s *AuthService) ChangePassword(ctx context.Context, authorization, currentPassword, newPassword, confirmationPassword string) (string, error) {
	credentials, err := stripBearer(authorization)
	if err != nil {
		return "", err
	}

	email, err := s.tokens.ExtractSubject(credentials)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.UserNotFoundError{Email: email}
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return "", &domain.InvalidPasswordError{Reason: "Wrong password!"}
	}

	if newPassword != confirmationPassword {
		return "", &domain.InvalidPasswordError{Reason: "Password are not the same!"}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePassword(ctx, user.Email, hash); err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}

	return "Password changed successfully.", nil
}

// stripBearer extracts the raw token from an "Authorization: Bearer <token>"
// header value. A missing or malformed prefix counts as an invalid token.
func stripBearer(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return "", domain.ErrTokenInvalid
	}
	token := strings.TrimSpace(authorization[len(bearerPrefix):])
	if token == "" {
		return "", domain.ErrTokenInvalid
	}
	return token, nil
}
