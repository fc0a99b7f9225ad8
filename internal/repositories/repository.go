package repositories

import "socketBoard/internal/models"

// Users is the credential store. Uniqueness of usernames is guaranteed by the
// storage layer, not by callers checking first.
type Users interface {
	Create(user *models.User) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
}

// Drawings is the durable store for finished drawings. Ownership rules live in
// the service layer; these operations are plain persistence.
type Drawings interface {
	Create(image *models.Image) (*models.Image, error)
	FindByID(id uint) (*models.Image, error)
	FindAll() ([]models.Image, error)
	FindByOwner(ownerID uint) ([]models.Image, error)
	DeleteByID(id uint) error
	DeleteByOwner(ownerID uint) error
}
