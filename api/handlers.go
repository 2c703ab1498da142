package api

import (
	"github.com/authors-haven/backend/database"
	"github.com/authors-haven/backend/realtime"
	"github.com/authors-haven/backend/services"
)

// initializeHandlers builds the service layer over the database and wires
// every handler into a routeHandlers struct
func initializeHandlers(db database.Database, hub *realtime.Hub, uploader services.ImageUploader) *routeHandlers {
	notificationService := services.NewNotificationService(db, hub)
	userService := services.NewUserService(db)
	articleService := services.NewArticleService(db, uploader, notificationService)
	commentService := services.NewCommentService(db, notificationService)
	ratingService := services.NewRatingService(db)
	searchService := services.NewSearchService(db)
	bookmarkService := services.NewBookmarkService(db)
	followService := services.NewFollowService(db, notificationService)
	reportService := services.NewReportService(db)

	return &routeHandlers{
		authHandler:         newAuthHandler(userService),
		profileHandler:      newProfileHandler(userService, followService),
		articleHandler:      newArticleHandler(articleService, ratingService, userService),
		commentHandler:      newCommentHandler(commentService),
		searchHandler:       newSearchHandler(searchService),
		bookmarkHandler:     newBookmarkHandler(bookmarkService),
		notificationHandler: newNotificationHandler(notificationService),
		reportHandler:       newReportHandler(reportService),
		wsHandler:           newWsHandler(hub),
	}
}
