package services

import (
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"socketBoard/internal/repositories"
)

type DrawingService struct {
	drawings repositories.Drawings
}

func NewDrawingService(drawings repositories.Drawings) *DrawingService {
	return &DrawingService{
		drawings: drawings,
	}
}

func (ds *DrawingService) Create(ownerID uint, imageData string) (*models.Image, error) {
	if imageData == "" {
		return nil, errs.ErrMissingDrawingData
	}
	return ds.drawings.Create(&models.Image{
		UserID:    ownerID,
		ImageData: imageData,
	})
}

func (ds *DrawingService) GetAll() ([]models.Image, error) {
	return ds.drawings.FindAll()
}

func (ds *DrawingService) GetByID(id uint) (*models.Image, error) {
	return ds.drawings.FindByID(id)
}

func (ds *DrawingService) GetByOwner(ownerID uint) ([]models.Image, error) {
	return ds.drawings.FindByOwner(ownerID)
}

// Delete removes one drawing. Only the owner may delete it.
func (ds *DrawingService) Delete(id, requesterID uint) error {
	image, err := ds.drawings.FindByID(id)
	if err != nil {
		return err
	}
	if image.UserID != requesterID {
		return errs.ErrForbidden
	}
	return ds.drawings.DeleteByID(id)
}

// DeleteAllByOwner bulk-deletes the owner's drawings. Only the owner may call
// it for themselves; deleting nothing still succeeds.
func (ds *DrawingService) DeleteAllByOwner(ownerID, requesterID uint) error {
	if ownerID != requesterID {
		return errs.ErrForbidden
	}
	return ds.drawings.DeleteByOwner(ownerID)
}
