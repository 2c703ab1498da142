package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return NewUserService(newTestDB(t))
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "Ada@Example.com",
		Password:  "correct horse battery",
	}
}

func TestSignupAndLogin(t *testing.T) {
	service := newUserService(t)

	user, token, err := service.Signup(validSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email) // normalized
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "correct horse battery", user.Password) // hashed

	// login is case-insensitive on email
	loggedIn, token, err := service.Login("ADA@example.COM", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestSignupDuplicateEmailIsConflict(t *testing.T) {
	service := newUserService(t)

	_, _, err := service.Signup(validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.Username = "ada2"
	_, _, err = service.Signup(second)
	assert.True(t, errs.IsConflict(err))
}

func TestSignupDuplicateUsernameIsConflict(t *testing.T) {
	service := newUserService(t)

	_, _, err := service.Signup(validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.Email = "other@example.com"
	_, _, err = service.Signup(second)
	assert.True(t, errs.IsConflict(err))
}

func TestSignupValidation(t *testing.T) {
	service := newUserService(t)

	short := validSignup()
	short.Password = "short"
	_, _, err := service.Signup(short)
	assert.True(t, errs.IsBadRequest(err))

	noEmail := validSignup()
	noEmail.Email = "  "
	_, _, err = service.Signup(noEmail)
	assert.True(t, errs.IsBadRequest(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newUserService(t)

	_, _, err := service.Signup(validSignup())
	require.NoError(t, err)

	_, _, err = service.Login("ada@example.com", "wrong password")
	assert.True(t, errs.IsUnauthorized(err))

	_, _, err = service.Login("nobody@example.com", "whatever")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestUpdateProfileAppliesPartialChanges(t *testing.T) {
	service := newUserService(t)

	user, _, err := service.Signup(validSignup())
	require.NoError(t, err)

	bio := "Writes about numbers"
	muted := false
	updated, err := service.UpdateProfile(user.ID, ProfileUpdate{
		Bio:        &bio,
		IsNotified: &muted,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
	assert.False(t, updated.IsNotified)
	assert.Equal(t, "Ada", updated.FirstName) // untouched
}

func TestGetProfileUnknownUser(t *testing.T) {
	service := newUserService(t)

	_, err := service.GetProfile("ghost")
	assert.True(t, errs.IsNotFound(err))
}
