package repositories

import (
	"errors"

	"socketBoard/internal/errs"
	"socketBoard/internal/models"

	"gorm.io/gorm"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

var _ Users = (*AuthenticationRepository)(nil)

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

// Create inserts the user. A concurrent insert of the same username loses at
// the unique constraint, not at an application-level existence check.
func (ar *AuthenticationRepository) Create(user *models.User) (*models.User, error) {
	result := ar.db.Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrUsernameTaken
		}
		return nil, result.Error
	}
	return user, nil
}

func (ar *AuthenticationRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	result := ar.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}
