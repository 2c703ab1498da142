package database

import (
	"github.com/authors-haven/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo            *UserRepo
	articleRepo         *ArticleRepo
	tagRepo             *TagRepo
	commentRepo         *CommentRepo
	ratingRepo          *RatingRepo
	articleReactionRepo *ArticleReactionRepo
	commentReactionRepo *CommentReactionRepo
	followRepo          *FollowRepo
	bookmarkRepo        *BookmarkRepo
	notificationRepo    *NotificationRepo
	reportRepo          *ReportRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:            NewUserRepo(db),
		articleRepo:         NewArticleRepo(db),
		tagRepo:             NewTagRepo(db),
		commentRepo:         NewCommentRepo(db),
		ratingRepo:          NewRatingRepo(db),
		articleReactionRepo: NewArticleReactionRepo(db),
		commentReactionRepo: NewCommentReactionRepo(db),
		followRepo:          NewFollowRepo(db),
		bookmarkRepo:        NewBookmarkRepo(db),
		notificationRepo:    NewNotificationRepo(db),
		reportRepo:          NewReportRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Article{},
		&models.Comment{},
		&models.Rating{},
		&models.ArticleReaction{},
		&models.CommentReaction{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Notification{},
		&models.Report{},
	)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) RatingRepo() *RatingRepo {
	return d.ratingRepo
}

func (d Database) ArticleReactionRepo() *ArticleReactionRepo {
	return d.articleReactionRepo
}

func (d Database) CommentReactionRepo() *CommentReactionRepo {
	return d.commentReactionRepo
}

func (d Database) FollowRepo() *FollowRepo {
	return d.followRepo
}

func (d Database) BookmarkRepo() *BookmarkRepo {
	return d.bookmarkRepo
}

func (d Database) NotificationRepo() *NotificationRepo {
	return d.notificationRepo
}

func (d Database) ReportRepo() *ReportRepo {
	return d.reportRepo
}
