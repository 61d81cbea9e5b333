package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
	"frota-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "password must be at least 8 characters")
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewValidationError("email", "email is already registered")
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.WithService("auth").Info("operator registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
