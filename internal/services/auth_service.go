package services

import (
	"context"
	"errors"
	"fmt"

	"ead/internal/models"
	"ead/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration.
type AuthService struct {
	userRepo repositories.UserRepository
	options
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, opts ...Option) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		options:  newOptions(opts),
	}
}

// RegisterUser creates an ACTIVE STUDENT account. The username is checked
// before the email and nothing is written when either is taken.
func (s *AuthService) RegisterUser(ctx context.Context, req models.RegistrationRequest) (*models.User, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn("username already in use", zap.String("username", req.Username))
		return nil, ErrUsernameTaken
	}
	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		s.log.Warn("email already in use", zap.String("email", req.Email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hashedPassword),
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Cpf:            req.Cpf,
		UserStatus:     models.UserStatusActive,
		UserType:       models.UserTypeStudent,
		CreationDate:   now,
		LastUpdateDate: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, s.conflict(ctx, req.Username)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.Info("user registered", zap.String("userId", user.UserID))
	s.publish(models.NewUserEvent(user, models.ActionCreate))
	return user, nil
}

// conflict tells which unique field a concurrent signup took first.
func (s *AuthService) conflict(ctx context.Context, username string) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err == nil && !taken {
		s.log.Warn("email taken concurrently", zap.String("username", username))
		return ErrEmailTaken
	}
	s.log.Warn("username taken concurrently", zap.String("username", username))
	return ErrUsernameTaken
}
