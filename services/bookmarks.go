package services

import (
	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
	"github.com/google/uuid"
)

type BookmarkService struct {
	articleRepo  *database.ArticleRepo
	bookmarkRepo *database.BookmarkRepo
}

func NewBookmarkService(db database.Database) *BookmarkService {
	return &BookmarkService{
		articleRepo:  db.ArticleRepo(),
		bookmarkRepo: db.BookmarkRepo(),
	}
}

// Add bookmarks a published article for the user. Re-bookmarking an already
// active bookmark is a conflict.
func (s *BookmarkService) Add(userID uuid.UUID, slug string) error {
	article, err := s.articleRepo.FindBySlug(slug, true)
	if err != nil {
		return errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return errs.NewNotFound("article")
	}

	changed, err := s.bookmarkRepo.SetActive(userID, article.ID, true)
	if err != nil {
		return errs.NewDatabaseError("create", "bookmark", err)
	}
	if !changed {
		return errs.NewAlreadyExists("bookmark")
	}
	return nil
}

// Remove deactivates the user's bookmark. Removing a bookmark that is not
// active is not found.
func (s *BookmarkService) Remove(userID uuid.UUID, slug string) error {
	article, err := s.articleRepo.FindBySlug(slug, false)
	if err != nil {
		return errs.NewDatabaseError("find", "article", err)
	}
	if article == nil {
		return errs.NewNotFound("article")
	}

	changed, err := s.bookmarkRepo.SetActive(userID, article.ID, false)
	if err != nil {
		return errs.NewDatabaseError("remove", "bookmark", err)
	}
	if !changed {
		return errs.NewNotFound("bookmark")
	}
	return nil
}

// List returns the user's active bookmarks as flattened article views.
func (s *BookmarkService) List(userID uuid.UUID) ([]ArticleView, error) {
	bookmarks, err := s.bookmarkRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "bookmarks", err)
	}
	views := make([]ArticleView, 0, len(bookmarks))
	for i := range bookmarks {
		views = append(views, FlattenArticle(&bookmarks[i].Article))
	}
	return views, nil
}
