package services

import (
	"sync"
	"testing"
	"time"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to an in-memory sqlite would see its own
	// database, so pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return database.New(db)
}

func seedUser(t *testing.T, db database.Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:  "Test",
		LastName:   username,
		Username:   username,
		Email:      username + "@example.com",
		Password:   "not-a-real-hash",
		Role:       "user",
		IsNotified: true,
	}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

// seedMutedUser creates a user who opted out of notifications. The opt-out
// lands via Update because the column carries a true default on insert.
func seedMutedUser(t *testing.T, db database.Database, username string) *models.User {
	t.Helper()

	user := seedUser(t, db, username)
	user.IsNotified = false
	require.NoError(t, db.UserRepo().Update(user))
	return user
}

func seedArticle(t *testing.T, db database.Database, author *models.User, title string, published bool) *models.Article {
	t.Helper()

	article := &models.Article{
		UserID:      author.ID,
		Title:       title,
		Slug:        NewSlug(title),
		Description: "a description",
		Body:        "some body text",
		ReadTime:    1,
		IsPublished: published,
	}
	if published {
		now := time.Now()
		article.PublishedAt = &now
	}
	require.NoError(t, db.ArticleRepo().Add(article))
	return article
}

// testFixture bundles the rows most service tests need.
type testFixture struct {
	db      database.Database
	author  *models.User
	reader  *models.User
	article *models.Article
}

// recordingPusher counts realtime pushes per username.
type recordingPusher struct {
	mu     sync.Mutex
	pushes map[string]int
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{pushes: make(map[string]int)}
}

func (p *recordingPusher) Push(username string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes[username]++
}

func (p *recordingPusher) count(username string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pushes[username]
}
