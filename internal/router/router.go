package router

import (
	"net/http"

	"omahaestates/internal/config"
	"omahaestates/internal/handlers"
	"omahaestates/internal/middleware"
	"omahaestates/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// Services
	photos := services.NewPhotoStore(cfg.MediaRoot)
	listingService := services.NewListingService(photos)
	searchService := services.NewSearchService()
	mailer := services.NewMailService(cfg.SMTP)

	// Handlers
	siteHandler := handlers.NewSiteHandler(listingService)
	listingHandler := handlers.NewListingHandler(cfg, listingService, searchService, mailer)
	infoHandler := handlers.NewInfoHandler()
	contactHandler := handlers.NewContactHandler(cfg, mailer)
	authHandler := handlers.NewAuthHandler()
	adminListings := handlers.NewAdminListingHandler(listingService)
	adminReference := handlers.NewAdminReferenceHandler()
	adminInfo := handlers.NewAdminInfoHandler()
	adminSearchLogs := handlers.NewAdminSearchLogHandler()

	// Public routes
	r.GET("/", siteHandler.Home)
	r.GET("/about/", siteHandler.About)
	r.GET("/listings/", listingHandler.List)
	r.GET("/listings/:id/", listingHandler.Detail)
	r.POST("/listings/:id/", listingHandler.Inquire) // listing-scoped inquiry
	r.GET("/contact/", contactHandler.Show)
	r.POST("/contact/", contactHandler.Submit)
	r.GET("/omaha-info/", infoHandler.List)
	r.GET("/omaha-info/:id/", infoHandler.Detail)

	// Accounts
	r.GET("/accounts/login/", authHandler.ShowLogin)
	r.POST("/accounts/login/", authHandler.Login)
	r.GET("/accounts/logout/", authHandler.Logout)

	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthRequired())
	{
		accounts.GET("/dashboard/", authHandler.Dashboard)
	}

	// Legacy management path
	r.GET("/admin", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard/")
	})

	// Management surface, staff only
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired(), middleware.StaffRequired())
	{
		dashboard.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/accounts/dashboard/")
		})

		dashboard.GET("/listings/", adminListings.List)
		dashboard.GET("/listings/new/", adminListings.New)
		dashboard.POST("/listings/new/", adminListings.Create)
		dashboard.GET("/listings/:id/edit/", adminListings.Edit)
		dashboard.POST("/listings/:id/edit/", adminListings.Update)
		dashboard.POST("/listings/:id/delete/", adminListings.Delete)
		dashboard.POST("/photos/:id/delete/", adminListings.DeletePhoto)

		dashboard.GET("/neighborhoods/", adminReference.Neighborhoods)
		dashboard.POST("/neighborhoods/", adminReference.CreateNeighborhood)
		dashboard.POST("/neighborhoods/:id/", adminReference.UpdateNeighborhood)
		dashboard.POST("/neighborhoods/:id/delete/", adminReference.DeleteNeighborhood)

		dashboard.GET("/home-types/", adminReference.HomeTypes)
		dashboard.POST("/home-types/", adminReference.CreateHomeType)
		dashboard.POST("/home-types/:id/", adminReference.UpdateHomeType)
		dashboard.POST("/home-types/:id/delete/", adminReference.DeleteHomeType)

		dashboard.GET("/price-ranges/", adminReference.PriceRanges)
		dashboard.POST("/price-ranges/", adminReference.CreatePriceRange)
		dashboard.POST("/price-ranges/:id/", adminReference.UpdatePriceRange)
		dashboard.POST("/price-ranges/:id/delete/", adminReference.DeletePriceRange)

		dashboard.GET("/omaha-info/", adminInfo.List)
		dashboard.GET("/omaha-info/new/", adminInfo.New)
		dashboard.POST("/omaha-info/new/", adminInfo.Create)
		dashboard.GET("/omaha-info/:id/edit/", adminInfo.Edit)
		dashboard.POST("/omaha-info/:id/edit/", adminInfo.Update)
		dashboard.POST("/omaha-info/:id/delete/", adminInfo.Delete)

		dashboard.GET("/search-logs/", adminSearchLogs.List)
		dashboard.GET("/search-logs/export/", adminSearchLogs.Export)
	}
}
