package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler         authHandler
	profileHandler      profileHandler
	articleHandler      articleHandler
	commentHandler      commentHandler
	searchHandler       searchHandler
	bookmarkHandler     bookmarkHandler
	notificationHandler notificationHandler
	reportHandler       reportHandler
	wsHandler           wsHandler
}
