package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyPublishFansOutToFollowers(t *testing.T) {
	db := newTestDB(t)
	pusher := newRecordingPusher()
	service := NewNotificationService(db, pusher)

	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author, "Fanned Out", true)

	followers := []string{"f1", "f2", "f3"}
	for _, username := range followers {
		follower := seedUser(t, db, username)
		changed, err := db.FollowRepo().SetFollowing(follower.ID, author.ID, true)
		require.NoError(t, err)
		require.True(t, changed)
	}
	muted := seedMutedUser(t, db, "muted")
	changed, err := db.FollowRepo().SetFollowing(muted.ID, author.ID, true)
	require.NoError(t, err)
	require.True(t, changed)

	result, err := service.NotifyPublish(article)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Delivered)
	assert.Equal(t, 0, result.Failed)

	for _, username := range followers {
		assert.Equal(t, 1, pusher.count(username), "follower %s", username)
	}
	assert.Equal(t, 0, pusher.count("muted"))
}

func TestNotifyPublishWithoutFollowers(t *testing.T) {
	db := newTestDB(t)
	service := NewNotificationService(db, nil)

	author := seedUser(t, db, "loner")
	article := seedArticle(t, db, author, "Quiet Launch", true)

	result, err := service.NotifyPublish(article)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Delivered)
	assert.Equal(t, 0, result.Failed)
}

func TestNotifyFollowRespectsOptOut(t *testing.T) {
	db := newTestDB(t)
	pusher := newRecordingPusher()
	service := NewNotificationService(db, pusher)

	follower := seedUser(t, db, "follower")
	muted := seedMutedUser(t, db, "muted")

	require.NoError(t, service.NotifyFollow(follower.ID, muted.ID))

	assert.Equal(t, 0, pusher.count("muted"))
	total, err := db.NotificationRepo().CountForReceiver(muted.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestNotificationListAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	service := NewNotificationService(db, nil)

	sender := seedUser(t, db, "sender")
	receiver := seedUser(t, db, "receiver")

	require.NoError(t, service.NotifyFollow(sender.ID, receiver.ID))

	notifications, metadata, err := service.List(receiver.ID, 1, 10, "/notifications")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead)
	assert.Equal(t, int64(1), metadata.TotalItems)

	updated, err := service.MarkRead(receiver.ID, notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	// only the receiver may mark it read
	_, err = service.MarkRead(sender.ID, notifications[0].ID)
	assert.True(t, errs.IsForbidden(err))
}

func TestNotificationListOutOfRangePage(t *testing.T) {
	db := newTestDB(t)
	service := NewNotificationService(db, nil)

	sender := seedUser(t, db, "sender")
	receiver := seedUser(t, db, "receiver")
	require.NoError(t, service.NotifyFollow(sender.ID, receiver.ID))

	_, _, err := service.List(receiver.ID, 99, 10, "/notifications")
	assert.True(t, errs.IsBadRequest(err))
}
