package services

import (
	"fmt"
	"strings"

	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/errs"
)

// SearchResult is the search response: the flattened matching articles plus
// a human-readable count message.
type SearchResult struct {
	Articles []ArticleView `json:"articles"`
	Message  string        `json:"message"`
}

type SearchService struct {
	articleRepo *database.ArticleRepo
}

func NewSearchService(db database.Database) *SearchService {
	return &SearchService{articleRepo: db.ArticleRepo()}
}

// Search composes the present filters conjunctively over published articles.
// At least one of title, author or tag must be given.
func (s *SearchService) Search(title, author, tag string) (*SearchResult, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	tag = strings.TrimSpace(tag)
	if title == "" && author == "" && tag == "" {
		return nil, errs.NewBadRequestError("at least one of title, author or tag is required")
	}

	articles, err := s.articleRepo.Search(database.SearchFilter{
		Title:  title,
		Author: author,
		Tag:    tag,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("search", "articles", err)
	}

	views := make([]ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, FlattenArticle(&articles[i]))
	}

	message := "No article match found"
	if len(views) == 1 {
		message = "1 article match found"
	} else if len(views) > 1 {
		message = fmt.Sprintf("%d article matches found", len(views))
	}

	return &SearchResult{Articles: views, Message: message}, nil
}
