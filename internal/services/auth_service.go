package services

import (
	"errors"
	"fmt"

	"stylebay/internal/domain"
	"stylebay/internal/repos"
	"stylebay/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = repos.ErrEmailTaken
	ErrUnknownEmail  = errors.New("unknown email")
	ErrWrongPassword = errors.New("wrong password")
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *token.Issuer
}

// Signup creates a user with an empty cart and returns a signed token.
// The pre-read produces the duplicate-email response; the unique index on
// email closes the race the pre-read alone would leave open.
func (s *AuthService) Signup(name, email, password string) (string, error) {
	if u, err := s.Users.ByEmail(email); err == nil && u != nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	cart, err := domain.NewCart().Encode()
	if err != nil {
		return "", err
	}
	u := &domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Hash:     string(hash),
		CartJSON: cart,
	}
	if err := s.Users.Insert(u); err != nil {
		return "", err
	}
	return s.Tokens.Sign(u.ID)
}

func (s *AuthService) Login(email, password string) (string, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, repos.ErrUserNotFound) {
		return "", ErrUnknownEmail
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", ErrWrongPassword
	}
	return s.Tokens.Sign(u.ID)
}
