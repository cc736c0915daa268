package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"artigadental/handlers"
	"artigadental/middleware"
)

// RegisterBookingRoutes registers the public availability and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.Availability.GetAvailability)
		api.POST("/appointments", hb.Appointment.CreateAppointment)
	}
}

// RegisterBlogRoutes registers the public blog endpoints.
func RegisterBlogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.GET("", hb.Blog.ListPosts)
		api.GET("/:slug", hb.Blog.GetPost)
	}
}

// RegisterAdminRoutes sets up endpoints for the dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/posts", hb.Admin.ListAllPosts)
		adminGroup.POST("/posts", hb.Admin.CreatePost)
		adminGroup.PUT("/posts/:id", hb.Admin.UpdatePost)
		adminGroup.DELETE("/posts/:id", hb.Admin.DeletePost)
		adminGroup.GET("/appointments", hb.Admin.ListAppointments)
	}
}

// RegisterHealthRoute exposes the dependency health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", handlers.Healthz)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
