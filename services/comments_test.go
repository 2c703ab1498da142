package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*CommentService, *recordingPusher, *testFixture) {
	t.Helper()
	db := newTestDB(t)
	pusher := newRecordingPusher()
	notifications := NewNotificationService(db, pusher)
	service := NewCommentService(db, notifications)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "Commented Article", true)

	return service, pusher, &testFixture{db: db, author: author, reader: reader, article: article}
}

func TestCommentCreateAndEditKeepsHistory(t *testing.T) {
	service, _, fx := newCommentService(t)

	comment, err := service.Create(fx.reader.ID, fx.article.Slug, "first take")
	require.NoError(t, err)
	assert.False(t, comment.IsEdited)

	_, err = service.Edit(fx.reader.ID, comment.ID, "second take")
	require.NoError(t, err)
	edited, err := service.Edit(fx.reader.ID, comment.ID, "third take")
	require.NoError(t, err)
	assert.True(t, edited.IsEdited)

	history, err := service.History(comment.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first take", history[0].Body)
	assert.Equal(t, "second take", history[1].Body)
	assert.Equal(t, "third take", history[2].Body)

	view, err := service.Get(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "third take", view.Body)
	assert.True(t, view.IsEdited)
}

func TestCommentCreateOnMissingArticle(t *testing.T) {
	service, _, fx := newCommentService(t)

	_, err := service.Create(fx.reader.ID, "no-such-slug", "hello")
	assert.True(t, errs.IsNotFound(err))
}

func TestCommentCreateNotifiesAuthor(t *testing.T) {
	service, pusher, fx := newCommentService(t)

	_, err := service.Create(fx.reader.ID, fx.article.Slug, "nice article")
	require.NoError(t, err)

	assert.Equal(t, 1, pusher.count(fx.author.Username))

	notifications, _, err := fx.db.NotificationRepo().FindForReceiver(fx.author.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "commented on your article")
}

func TestCommentSelfCommentDoesNotNotify(t *testing.T) {
	service, pusher, fx := newCommentService(t)

	_, err := service.Create(fx.author.ID, fx.article.Slug, "my own note")
	require.NoError(t, err)

	assert.Equal(t, 0, pusher.count(fx.author.Username))
}

func TestCommentEditByOtherUserForbidden(t *testing.T) {
	service, _, fx := newCommentService(t)

	comment, err := service.Create(fx.reader.ID, fx.article.Slug, "original")
	require.NoError(t, err)

	_, err = service.Edit(fx.author.ID, comment.ID, "hijacked")
	assert.True(t, errs.IsForbidden(err))
}

func TestCommentDeleteReturnsRefreshedList(t *testing.T) {
	service, _, fx := newCommentService(t)

	first, err := service.Create(fx.reader.ID, fx.article.Slug, "one")
	require.NoError(t, err)
	_, err = service.Create(fx.reader.ID, fx.article.Slug, "two")
	require.NoError(t, err)

	remaining, err := service.Delete(fx.reader.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "two", remaining[0].Body)

	// the deleted comment is gone from reads
	_, err = service.Get(first.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestCommentDeleteByOtherUserForbidden(t *testing.T) {
	service, _, fx := newCommentService(t)

	comment, err := service.Create(fx.reader.ID, fx.article.Slug, "mine")
	require.NoError(t, err)

	_, err = service.Delete(fx.author.ID, comment.ID)
	assert.True(t, errs.IsForbidden(err))
}

func TestCommentToggleLike(t *testing.T) {
	service, pusher, fx := newCommentService(t)

	comment, err := service.Create(fx.reader.ID, fx.article.Slug, "likable")
	require.NoError(t, err)

	liked, err := service.ToggleLike(fx.author.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, pusher.count(fx.reader.Username))

	liked, err = service.ToggleLike(fx.author.ID, comment.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// unliking does not notify again
	assert.Equal(t, 1, pusher.count(fx.reader.Username))
}
