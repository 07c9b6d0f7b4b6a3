package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
	"github.com/taskforge/task-api/internal/pkg/crypto"
)

// TokenIssuer is the subset of the token manager the auth service needs.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register creates a new account. The role defaults to "user" when the
// payload omitted it. Email uniqueness is enforced by the repository.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(domain.Principal{UserID: created.ID, Role: created.Role})
	if err != nil {
		return nil, "", err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return created, token, nil
}

// Login verifies credentials against the stored hash and issues a token.
// Unknown email and wrong password are both reported as invalid
// credentials so the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, token, nil
}
