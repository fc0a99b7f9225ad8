package services

import (
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"socketBoard/internal/repositories"
)

// In-memory stand-ins for the gorm repositories. They enforce the same
// guarantees the storage layer does (unique usernames, not-found errors).

type fakeUsersRepo struct {
	users  map[string]models.User
	nextID uint
}

var _ repositories.Users = (*fakeUsersRepo)(nil)

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]models.User)}
}

func (f *fakeUsersRepo) Create(user *models.User) (*models.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, errs.ErrUsernameTaken
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = *user
	return user, nil
}

func (f *fakeUsersRepo) FindByUsername(username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return &user, nil
}

type fakeDrawingsRepo struct {
	images map[uint]models.Image
	nextID uint
}

var _ repositories.Drawings = (*fakeDrawingsRepo)(nil)

func newFakeDrawingsRepo() *fakeDrawingsRepo {
	return &fakeDrawingsRepo{images: make(map[uint]models.Image)}
}

func (f *fakeDrawingsRepo) Create(image *models.Image) (*models.Image, error) {
	f.nextID++
	image.ID = f.nextID
	f.images[image.ID] = *image
	return image, nil
}

func (f *fakeDrawingsRepo) FindByID(id uint) (*models.Image, error) {
	image, ok := f.images[id]
	if !ok {
		return nil, errs.ErrDrawingNotFound
	}
	return &image, nil
}

func (f *fakeDrawingsRepo) FindAll() ([]models.Image, error) {
	var images []models.Image
	for _, image := range f.images {
		images = append(images, image)
	}
	return images, nil
}

func (f *fakeDrawingsRepo) FindByOwner(ownerID uint) ([]models.Image, error) {
	var images []models.Image
	for _, image := range f.images {
		if image.UserID == ownerID {
			images = append(images, image)
		}
	}
	return images, nil
}

func (f *fakeDrawingsRepo) DeleteByID(id uint) error {
	delete(f.images, id)
	return nil
}

func (f *fakeDrawingsRepo) DeleteByOwner(ownerID uint) error {
	for id, image := range f.images {
		if image.UserID == ownerID {
			delete(f.images, id)
		}
	}
	return nil
}
