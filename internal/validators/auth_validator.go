package validators

import (
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if user.Username == "" {
		errors = append(errors, errs.ErrInvalidUsername)
	}

	if user.Password == "" {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	return errors
}
