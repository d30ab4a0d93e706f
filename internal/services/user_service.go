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

// UserService handles reads and updates of existing users.
type UserService struct {
	userRepo repositories.UserRepository
	options
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, opts ...Option) *UserService {
	return &UserService{
		userRepo: userRepo,
		options:  newOptions(opts),
	}
}

// ListUsers returns one page of users matching filter.
func (s *UserService) ListUsers(ctx context.Context, filter repositories.UserFilter, page repositories.PageRequest) (models.Page[models.User], error) {
	page = page.Normalize()
	users, total, err := s.userRepo.FindAll(ctx, filter, page)
	if err != nil {
		return models.Page[models.User]{}, err
	}
	return models.NewPage(users, page.Page, page.Size, total), nil
}

// GetUser retrieves a single user.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.log.Info("user deleted", zap.String("userId", id))
	s.publish(models.NewUserEvent(user, models.ActionDelete))
	return nil
}

// UpdateProfile replaces full name, phone number and cpf.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req models.ProfileUpdateRequest) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) error {
		u.FullName = req.FullName
		u.PhoneNumber = req.PhoneNumber
		u.Cpf = req.Cpf
		return nil
	})
}

// UpdatePassword replaces the password when req.OldPassword matches the
// stored hash.
func (s *UserService) UpdatePassword(ctx context.Context, id string, req models.PasswordUpdateRequest) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) error {
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)); err != nil {
			s.log.Warn("password mismatch", zap.String("userId", id))
			return ErrPasswordMismatch
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = string(hashed)
		return nil
	})
}

// UpdateImage replaces the image URL.
func (s *UserService) UpdateImage(ctx context.Context, id string, req models.ImageUpdateRequest) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) error {
		u.ImageURL = req.ImageURL
		return nil
	})
}

// update loads the user, applies the whitelisted changes, stamps the
// modification time and persists with a single store call.
func (s *UserService) update(ctx context.Context, id string, apply func(*models.User) error) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(user); err != nil {
		return nil, err
	}
	user.LastUpdateDate = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	s.log.Info("user updated", zap.String("userId", id))
	s.publish(models.NewUserEvent(user, models.ActionUpdate))
	return user, nil
}
