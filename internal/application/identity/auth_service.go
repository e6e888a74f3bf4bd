package identity

import (
	"context"
	"time"

	"github.com/travelworks/backend/internal/domain/identity"
	"github.com/travelworks/backend/internal/domain/shared"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// AuthService authenticates users and issues access tokens
type AuthService struct {
	userRepo identity.UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies credentials and returns a signed token.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	invalidCredentials := shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, invalidCredentials
	}
	if !user.Active {
		return nil, shared.NewDomainError("UNAUTHORIZED", "User account is disabled")
	}
	if !user.CheckPassword(req.Password) {
		return nil, invalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}
