package services

import (
	"context"
	"testing"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/authors-haven/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchCorpus(t *testing.T) (*SearchService, database.Database) {
	t.Helper()
	db := newTestDB(t)
	notifications := NewNotificationService(db, nil)
	articles := NewArticleService(db, nil, notifications)

	jon := seedUser(t, db, "jon")
	jane := seedUser(t, db, "jane")

	publish := func(author *models.User, title, tagList string) {
		t.Helper()
		article, err := articles.Create(context.Background(), author.ID, ArticleInput{
			Title:   title,
			Body:    "body text",
			TagList: tagList,
		})
		require.NoError(t, err)
		_, _, err = articles.Publish(author.ID, article.Slug)
		require.NoError(t, err)
	}

	publish(jane, "Vue for Beginners", "vue")
	publish(jon, "Advanced Vue Patterns", "vue")
	publish(jon, "React Under the Hood", "react")

	// drafts never match
	_, err := articles.Create(context.Background(), jon.ID, ArticleInput{
		Title:   "Unpublished Vue Secrets",
		Body:    "body",
		TagList: "vue",
	})
	require.NoError(t, err)

	return NewSearchService(db), db
}

func TestSearchByTitle(t *testing.T) {
	service, _ := seedSearchCorpus(t)

	result, err := service.Search("vue", "", "")
	require.NoError(t, err)

	assert.Len(t, result.Articles, 2)
	assert.Equal(t, "2 article matches found", result.Message)
}

func TestSearchCriteriaConjoin(t *testing.T) {
	service, _ := seedSearchCorpus(t)

	result, err := service.Search("", "jon", "vue")
	require.NoError(t, err)

	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Advanced Vue Patterns", result.Articles[0].Title)
	assert.Equal(t, "1 article match found", result.Message)
}

func TestSearchNoMatches(t *testing.T) {
	service, _ := seedSearchCorpus(t)

	result, err := service.Search("elixir", "", "")
	require.NoError(t, err)

	assert.Empty(t, result.Articles)
	assert.Equal(t, "No article match found", result.Message)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	service, _ := seedSearchCorpus(t)

	result, err := service.Search("VUE", "", "")
	require.NoError(t, err)
	assert.Len(t, result.Articles, 2)

	result, err = service.Search("", "JON", "")
	require.NoError(t, err)
	assert.Len(t, result.Articles, 2)
}

func TestSearchRequiresACriterion(t *testing.T) {
	service, _ := seedSearchCorpus(t)

	_, err := service.Search("", "  ", "")
	assert.True(t, errs.IsBadRequest(err))
}
