package repositories

import (
	"errors"

	"socketBoard/internal/errs"
	"socketBoard/internal/models"

	"gorm.io/gorm"
)

type DrawingRepository struct {
	db *gorm.DB
}

var _ Drawings = (*DrawingRepository)(nil)

func NewDrawingRepository(db *gorm.DB) *DrawingRepository {
	return &DrawingRepository{
		db: db,
	}
}

func (dr *DrawingRepository) Create(image *models.Image) (*models.Image, error) {
	result := dr.db.Create(image)
	if result.Error != nil {
		return nil, result.Error
	}
	return image, nil
}

func (dr *DrawingRepository) FindByID(id uint) (*models.Image, error) {
	var image models.Image
	result := dr.db.First(&image, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDrawingNotFound
		}
		return nil, result.Error
	}
	return &image, nil
}

func (dr *DrawingRepository) FindAll() ([]models.Image, error) {
	var images []models.Image
	result := dr.db.Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}

func (dr *DrawingRepository) FindByOwner(ownerID uint) ([]models.Image, error) {
	var images []models.Image
	result := dr.db.Where("user_id = ?", ownerID).Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}

func (dr *DrawingRepository) DeleteByID(id uint) error {
	return dr.db.Delete(&models.Image{}, id).Error
}

// DeleteByOwner removes every drawing the owner has; deleting zero rows is
// not an error.
func (dr *DrawingRepository) DeleteByOwner(ownerID uint) error {
	return dr.db.Where("user_id = ?", ownerID).Delete(&models.Image{}).Error
}
