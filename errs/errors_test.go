package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorClassifiesCauses(t *testing.T) {
	duplicate := NewDatabaseError("create", "user", errors.New(`duplicate key value violates unique constraint "users_email_key"`))
	assert.Equal(t, http.StatusConflict, duplicate.StatusCode)
	assert.True(t, IsConflict(duplicate))

	sqliteDuplicate := NewDatabaseError("create", "rating", errors.New("UNIQUE constraint failed: ratings.user_id"))
	assert.Equal(t, http.StatusConflict, sqliteDuplicate.StatusCode)

	missing := NewDatabaseError("find", "article", errors.New("record not found"))
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.True(t, IsNotFound(missing))

	reference := NewDatabaseError("create", "comment", errors.New(`insert violates foreign key constraint "fk_comments_article"`))
	assert.Equal(t, http.StatusBadRequest, reference.StatusCode)

	generic := NewDatabaseError("find", "user", errors.New("disk I/O error"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestApiErrSentinelMatching(t *testing.T) {
	assert.True(t, IsForbidden(NewForbiddenError("not yours")))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("no token")))
	assert.True(t, IsConflict(NewConflictError("already published")))
	assert.True(t, IsNotFound(NewNotFound("article")))
	assert.True(t, IsConflict(NewAlreadyExists("bookmark")))
	assert.True(t, IsBadRequest(NewInvalidFieldError("rating", "out of range")))

	assert.False(t, IsForbidden(NewNotFound("article")))
}

// Every constructor must wrap its sentinel, or the Is* helpers cannot see
// past the message.
func TestConstructorsWrapSentinels(t *testing.T) {
	assert.True(t, IsBadRequest(NewBadRequestError("at least one search filter is required")))
	assert.True(t, IsNotFound(NewNotFoundError("no such page")))
	assert.True(t, errors.Is(NewInternalError("broken"), ErrInternal))
	assert.True(t, errors.Is(NewInternalErrorWithCause("broken", errors.New("io")), ErrInternal))

	assert.False(t, IsNotFound(NewBadRequestError("nope")))
	assert.False(t, IsBadRequest(NewNotFoundError("gone")))
}

func TestConstructorMessagesSurviveWrapping(t *testing.T) {
	err := NewBadRequestError("page out of range")
	assert.Contains(t, err.Error(), "page out of range")

	withCause := NewInternalErrorWithCause("failed to fan out", errors.New("socket closed"))
	assert.Contains(t, withCause.GetFullError(), "failed to fan out")
	assert.Contains(t, withCause.GetFullError(), "socket closed")
}

func TestGetFullErrorIncludesCauses(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewInternalErrorWithCause("failed to upload article images", inner)

	full := err.GetFullError()
	assert.Contains(t, full, "failed to upload article images")
	assert.Contains(t, full, "connection reset")
}
