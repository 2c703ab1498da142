package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRevisionOrdering(t *testing.T) {
	var comment Comment

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, comment.AppendRevision("first", base))
	require.NoError(t, comment.AppendRevision("second", base.Add(time.Minute)))
	require.NoError(t, comment.AppendRevision("third", base.Add(2*time.Minute)))

	history, err := comment.History()
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Body)
	assert.Equal(t, "third", history[2].Body)

	latest, ok := comment.Latest()
	require.True(t, ok)
	assert.Equal(t, "third", latest.Body)
	assert.True(t, latest.Timestamp.Equal(base.Add(2*time.Minute)))
}

func TestCommentLatestOnEmptyHistory(t *testing.T) {
	var comment Comment

	_, ok := comment.Latest()
	assert.False(t, ok)

	history, err := comment.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}
