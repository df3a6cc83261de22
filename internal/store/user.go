package store

import (
	"context"
	"errors"

	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

type UserStore struct {
	*Repository[models.User]
}

func NewUserStore(gdb *gorm.DB) *UserStore {
	return &UserStore{Repository: NewRepository[models.User](gdb, "User")}
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFound("User")
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	var count int64

	err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error

	if err != nil {
		return err
	}

	if count > 0 {
		return types.NewConflict("Email already registered")
	}

	return s.Repository.Create(ctx, user)
}
