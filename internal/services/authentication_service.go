package services

import (
	"time"

	"socketBoard/configs"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"socketBoard/internal/repositories"
	"socketBoard/internal/utils"
	"socketBoard/internal/validators"
)

type AuthenticationService struct {
	users  repositories.Users
	config *configs.Config
}

func NewAuthenticationService(
	users repositories.Users,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		users:  users,
		config: config,
	}
}

// Register hashes the password and inserts the user. Duplicate usernames are
// rejected by the storage layer's unique constraint.
func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, []error{err}
	}
	user.PasswordHash = password
	user.Password = ""
	created, err := as.users.Create(user)
	if err != nil {
		return nil, []error{err}
	}
	return created, nil
}

// Login verifies credentials and issues a 1h bearer token. Unknown usernames
// and wrong passwords produce the same error so accounts cannot be enumerated.
func (as *AuthenticationService) Login(username, password string) (string, *models.User, error) {
	user, err := as.users.FindByUsername(username)
	if err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, password); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	ttl := time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second
	token, err := utils.CreateJwtToken(
		user.ID,
		user.Username,
		as.config.JwtKey(),
		time.Now().Add(ttl),
	)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ParseToken verifies signature and expiry; validity needs no server-side
// lookup.
func (as *AuthenticationService) ParseToken(token string) (*models.Claims, error) {
	claims, err := utils.VerifyToken(token, as.config.JwtKey())
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	return claims, nil
}
