package services

import (
	"context"
	"strings"
	"testing"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleService(t *testing.T) (*ArticleService, database.Database) {
	t.Helper()
	db := newTestDB(t)
	notifications := NewNotificationService(db, nil)
	return NewArticleService(db, nil, notifications), db
}

func TestArticleCreateDerivesSlugAndReadTime(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")

	body := strings.TrimSpace(strings.Repeat("word ", 550))
	article, err := service.Create(context.Background(), author.ID, ArticleInput{
		Title:   "How to Write Go",
		Body:    body,
		TagList: "Go, testing",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(article.Slug, "how-to-write-go-"), "slug was %s", article.Slug)
	assert.Equal(t, 2, article.ReadTime) // 550 words at 275 wpm
	assert.False(t, article.IsPublished)

	require.Len(t, article.Tags, 2)
	names := []string{article.Tags[0].Name, article.Tags[1].Name}
	assert.Contains(t, names, "go")
	assert.Contains(t, names, "testing")
}

func TestArticleIdenticalTitlesGetDistinctSlugs(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")

	first, err := service.Create(context.Background(), author.ID, ArticleInput{Title: "Same Title", Body: "body"})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), author.ID, ArticleInput{Title: "Same Title", Body: "body"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestArticleCreateValidation(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")

	_, err := service.Create(context.Background(), author.ID, ArticleInput{Title: "", Body: "body"})
	assert.True(t, errs.IsBadRequest(err))

	_, err = service.Create(context.Background(), author.ID, ArticleInput{Title: "Title", Body: "  "})
	assert.True(t, errs.IsBadRequest(err))
}

func TestArticleGetPublishedHidesDrafts(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	draft := seedArticle(t, db, author, "Draft Piece", false)

	_, err := service.GetPublished(draft.Slug)
	assert.True(t, errs.IsNotFound(err))
}

func TestArticlePublishLifecycle(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	draft := seedArticle(t, db, author, "Launch Day", false)

	published, _, err := service.Publish(author.ID, draft.Slug)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)

	// double publish is a conflict
	_, _, err = service.Publish(author.ID, draft.Slug)
	assert.True(t, errs.IsConflict(err))

	view, err := service.GetPublished(draft.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Launch Day", view.Title)

	unpublished, err := service.Unpublish(author.ID, draft.Slug)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
	assert.Nil(t, unpublished.PublishedAt)
}

func TestArticleOwnershipDisambiguation(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	intruder := seedUser(t, db, "intruder")
	article := seedArticle(t, db, author, "Protected", true)

	// someone else's article is forbidden, not missing
	_, err := service.Update(context.Background(), intruder.ID, article.Slug, ArticleInput{Title: "Stolen"})
	assert.True(t, errs.IsForbidden(err))

	// an unknown slug is missing
	_, err = service.Update(context.Background(), intruder.ID, "no-such-slug", ArticleInput{Title: "Void"})
	assert.True(t, errs.IsNotFound(err))
}

func TestArticleUpdateRecomputesReadTime(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author, "Short Read", true)

	longBody := strings.TrimSpace(strings.Repeat("word ", 830))
	updated, err := service.Update(context.Background(), author.ID, article.Slug, ArticleInput{Body: longBody})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.ReadTime) // ceil(830/275)
	assert.Equal(t, article.Slug, updated.Slug)
}

func TestArticleDeleteHidesFromReads(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author, "Ephemeral", true)

	require.NoError(t, service.Delete(author.ID, article.Slug))

	_, err := service.GetPublished(article.Slug)
	assert.True(t, errs.IsNotFound(err))
}

func TestArticleToggleLikeEnrichesView(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	article := seedArticle(t, db, author, "Likable", true)

	liked, err := service.ToggleLike(reader.ID, article.Slug)
	require.NoError(t, err)
	assert.True(t, liked)

	view, err := service.GetPublished(article.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.LikesCount)
	require.Len(t, view.Likers, 1)
	assert.Equal(t, "reader", view.Likers[0].Username)

	liked, err = service.ToggleLike(reader.ID, article.Slug)
	require.NoError(t, err)
	assert.False(t, liked)

	view, err = service.GetPublished(article.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.LikesCount)
}

func TestArticleListPagination(t *testing.T) {
	service, db := newArticleService(t)
	author := seedUser(t, db, "author")

	for _, title := range []string{"One", "Two", "Three"} {
		seedArticle(t, db, author, title, true)
	}
	seedArticle(t, db, author, "Hidden Draft", false)

	views, metadata, err := service.ListPublished(1, 2, "/articles")
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, int64(3), metadata.TotalItems)
	assert.Equal(t, 2, metadata.TotalPages)
	assert.NotEmpty(t, metadata.NextPage)

	drafts, _, err := service.ListOwn(author.ID, false, 1, 10, "/articles/drafts")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Hidden Draft", drafts[0].Title)
}

func TestReadTimeFloorsAtOneMinute(t *testing.T) {
	assert.Equal(t, 1, ReadTime("just a few words"))
	assert.Equal(t, 1, ReadTime(""))
}
