package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	PostHandler     *PostHandler
	MediaHandler    *MediaHandler
	ProductHandler  *ProductHandler
	AnalysisHandler *AnalysisHandler
}
