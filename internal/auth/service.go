// Package auth implements registration, login and token-based
// authentication for HTTP requests.
package auth

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"bookshelf/internal/apperrors"
	"bookshelf/internal/database/users"
	"bookshelf/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// invalidCredentials is returned for both unknown emails and wrong
// passwords so login failures don't reveal which accounts exist.
func invalidCredentials() error {
	return apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
}

// Service handles user registration, login and profile lookup.
type Service struct {
	users      *users.Repository
	tokens     *TokenManager
	bcryptCost int
}

// NewService creates a new authentication service.
func NewService(users *users.Repository, tokens *TokenManager, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register validates the input, creates the user and issues a token.
// The plaintext password is hashed before anything is persisted and is
// never stored or logged.
func (s *Service) Register(username, email, password string) (*entities.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", apperrors.New(apperrors.KindValidation, "username, email and password are required")
	}
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, "", apperrors.New(apperrors.KindValidation, "invalid email address")
	}
	if len(password) < MinPasswordLength {
		return nil, "", apperrors.New(apperrors.KindValidation, "password must be at least 6 characters")
	}

	taken, err := s.users.UsernameOrEmailTaken(username, email)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to check existing user", err)
	}
	if taken {
		return nil, "", apperrors.New(apperrors.KindConflict, "username or email already exists")
	}

	passwordHash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, "", apperrors.New(apperrors.KindValidation, err.Error())
		}
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to create user", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues a token.
func (s *Service) Login(email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.New(apperrors.KindValidation, "email and password are required")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", invalidCredentials()
		}
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to find user", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", invalidCredentials()
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the public record of an authenticated user.
func (s *Service) Profile(userID uint) (*entities.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to find user", err)
	}
	return user, nil
}
