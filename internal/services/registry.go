package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService     AuthService
	PostService     PostService
	MediaService    MediaService
	ProductService  ProductService
	AnalysisService AnalysisService
}
