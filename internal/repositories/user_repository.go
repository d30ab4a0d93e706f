package repositories

import (
	"context"

	"ead/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	FindAll(ctx context.Context, filter UserFilter, page PageRequest) ([]models.User, int64, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
