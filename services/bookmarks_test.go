package services

import (
	"testing"

	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkLifecycle(t *testing.T) {
	db := newTestDB(t)
	service := NewBookmarkService(db)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "Saved for Later", true)

	require.NoError(t, service.Add(reader.ID, article.Slug))

	// re-bookmarking is a conflict
	err := service.Add(reader.ID, article.Slug)
	assert.True(t, errs.IsConflict(err))

	views, err := service.List(reader.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Saved for Later", views[0].Title)

	require.NoError(t, service.Remove(reader.ID, article.Slug))

	views, err = service.List(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, views)

	// removing an inactive bookmark is not found
	err = service.Remove(reader.ID, article.Slug)
	assert.True(t, errs.IsNotFound(err))
}

func TestBookmarkDraftIsNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewBookmarkService(db)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	draft := seedArticle(t, db, author, "Not Yet Public", false)

	err := service.Add(reader.ID, draft.Slug)
	assert.True(t, errs.IsNotFound(err))
}

func TestBookmarkReaddAfterRemove(t *testing.T) {
	db := newTestDB(t)
	service := NewBookmarkService(db)

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "On Again", true)

	require.NoError(t, service.Add(reader.ID, article.Slug))
	require.NoError(t, service.Remove(reader.ID, article.Slug))
	require.NoError(t, service.Add(reader.ID, article.Slug))

	views, err := service.List(reader.ID)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}
