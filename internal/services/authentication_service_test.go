package services

import (
	"testing"
	"time"

	"socketBoard/configs"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"socketBoard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthenticationService, *fakeUsersRepo) {
	repo := newFakeUsersRepo()
	return NewAuthenticationService(repo, configs.GetConfig()), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	as, repo := newAuthService()

	user, registerErrs := as.Register(&models.User{Username: "alice", Password: "pw1"})
	require.Empty(t, registerErrs)
	require.NotNil(t, user)

	assert.Equal(t, uint(1), user.ID)
	assert.Empty(t, user.Password, "plaintext must not survive registration")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
	assert.Len(t, repo.users, 1)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	as, repo := newAuthService()

	_, registerErrs := as.Register(&models.User{Username: "alice", Password: "pw1"})
	require.Empty(t, registerErrs)

	_, registerErrs = as.Register(&models.User{Username: "alice", Password: "pw2"})
	require.Len(t, registerErrs, 1)
	assert.ErrorIs(t, registerErrs[0], errs.ErrUsernameTaken)
	assert.Len(t, repo.users, 1, "exactly one record must persist")
}

func TestRegisterValidation(t *testing.T) {
	as, _ := newAuthService()

	_, registerErrs := as.Register(&models.User{Username: "", Password: "pw"})
	assert.NotEmpty(t, registerErrs)

	_, registerErrs = as.Register(&models.User{Username: "bob", Password: ""})
	assert.NotEmpty(t, registerErrs)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	as, _ := newAuthService()
	_, registerErrs := as.Register(&models.User{Username: "alice", Password: "pw1"})
	require.Empty(t, registerErrs)

	token, user, err := as.Login("alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	claims, err := utils.VerifyToken(token, configs.GetConfig().JwtKey())
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "alice", claims.Username)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	as, _ := newAuthService()
	_, registerErrs := as.Register(&models.User{Username: "alice", Password: "pw1"})
	require.Empty(t, registerErrs)

	_, _, wrongPassword := as.Login("alice", "nope")
	_, _, unknownUser := as.Login("nobody", "pw1")

	assert.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, errs.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	as, _ := newAuthService()

	_, err := as.ParseToken("not-a-token")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	as, _ := newAuthService()

	forged, err := utils.CreateJwtToken(1, "alice", []byte("some-other-key"), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = as.ParseToken(forged)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	as, _ := newAuthService()

	expired, err := utils.CreateJwtToken(1, "alice", configs.GetConfig().JwtKey(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = as.ParseToken(expired)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
