package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface, the authenticated surface and the
// admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/signup", handlers.authHandler.signup())
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/articles", handlers.articleHandler.listPublished())
		r.Get("/articles/author/{username}", handlers.articleHandler.listByAuthor())
		r.Get("/articles/{slug}", handlers.articleHandler.getArticle())
		r.Get("/articles/ratings/{articleID}", handlers.articleHandler.getArticleRatings())
		r.Get("/articles/{slug}/comments", handlers.commentHandler.listComments())
		r.Get("/comments/{commentID}", handlers.commentHandler.getComment())
		r.Get("/comments/{commentID}/history", handlers.commentHandler.getCommentHistory())
		r.Get("/tags", handlers.articleHandler.getTags())
		r.Get("/search", handlers.searchHandler.search())
		r.Get("/profiles/{username}", handlers.profileHandler.getProfile())

		// Websocket handshake carries its own token
		r.Get("/ws/notifications", handlers.wsHandler.notificationStream())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/articles", handlers.articleHandler.createArticle())
		r.Get("/articles/drafts", handlers.articleHandler.listDrafts())
		r.Get("/articles/me", handlers.articleHandler.listOwnPublished())
		r.Put("/articles/{slug}", handlers.articleHandler.updateArticle())
		r.Delete("/articles/{slug}", handlers.articleHandler.deleteArticle())
		r.Put("/articles/publish/{slug}", handlers.articleHandler.publishArticle())
		r.Put("/articles/unpublish/{slug}", handlers.articleHandler.unpublishArticle())
		r.Post("/articles/ratings", handlers.articleHandler.rateArticle())

		r.Post("/articles/{slug}/comments", handlers.commentHandler.createComment())
		r.Put("/comments/{commentID}", handlers.commentHandler.editComment())
		r.Delete("/comments/{commentID}", handlers.commentHandler.deleteComment())

		r.Post("/reactions/article/{slug}", handlers.articleHandler.toggleArticleLike())
		r.Post("/reactions/comment/{commentID}", handlers.commentHandler.toggleCommentLike())

		r.Post("/bookmarks/{slug}", handlers.bookmarkHandler.addBookmark())
		r.Delete("/bookmarks/{slug}", handlers.bookmarkHandler.removeBookmark())
		r.Get("/bookmarks", handlers.bookmarkHandler.listBookmarks())

		r.Get("/notifications", handlers.notificationHandler.listNotifications())
		r.Put("/notifications/{notificationID}", handlers.notificationHandler.markNotificationRead())

		r.Put("/profiles", handlers.profileHandler.updateProfile())
		r.Post("/profiles/{username}/follow", handlers.profileHandler.follow())
		r.Delete("/profiles/{username}/follow", handlers.profileHandler.unfollow())
		r.Get("/profiles/followers", handlers.profileHandler.followers())
		r.Get("/profiles/following", handlers.profileHandler.following())

		r.Post("/articles/{slug}/report", handlers.reportHandler.createReport())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireRole("admin"))
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/reports", handlers.reportHandler.listReports())
	})
}
