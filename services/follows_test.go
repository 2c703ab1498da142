package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowLifecycle(t *testing.T) {
	db := newTestDB(t)
	pusher := newRecordingPusher()
	service := NewFollowService(db, NewNotificationService(db, pusher))

	follower := seedUser(t, db, "follower")
	target := seedUser(t, db, "target")

	profile, err := service.Follow(follower.ID, "target")
	require.NoError(t, err)
	assert.Equal(t, "target", profile.Username)
	assert.Equal(t, 1, pusher.count("target"))

	// duplicate follow is a conflict
	_, err = service.Follow(follower.ID, "target")
	assert.True(t, errs.IsConflict(err))

	followers, err := service.Followers(target.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "follower", followers[0].Username)

	following, err := service.Following(follower.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "target", following[0].Username)

	require.NoError(t, service.Unfollow(follower.ID, "target"))

	followers, err = service.Followers(target.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	// unfollowing again is not found
	err = service.Unfollow(follower.ID, "target")
	assert.True(t, errs.IsNotFound(err))
}

func TestFollowReusesTheSameRow(t *testing.T) {
	db := newTestDB(t)
	service := NewFollowService(db, NewNotificationService(db, nil))

	follower := seedUser(t, db, "follower")
	target := seedUser(t, db, "target")

	_, err := service.Follow(follower.ID, "target")
	require.NoError(t, err)
	require.NoError(t, service.Unfollow(follower.ID, "target"))
	_, err = service.Follow(follower.ID, "target")
	require.NoError(t, err)

	// a second insert would have violated the pair's unique index, so a
	// successful refollow proves the row was reused
	following, err := db.FollowRepo().IsFollowing(follower.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowYourselfIsRejected(t *testing.T) {
	db := newTestDB(t)
	service := NewFollowService(db, NewNotificationService(db, nil))

	user := seedUser(t, db, "narcissus")

	_, err := service.Follow(user.ID, "narcissus")
	assert.True(t, errs.IsBadRequest(err))
}

func TestFollowUnknownUser(t *testing.T) {
	db := newTestDB(t)
	service := NewFollowService(db, NewNotificationService(db, nil))

	user := seedUser(t, db, "someone")

	_, err := service.Follow(user.ID, "ghost")
	assert.True(t, errs.IsNotFound(err))
}
