package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/controllers"
	"github.com/Shankerteja/Sheshield-backend/middlewares"
)

type Handlers struct {
	Auth      *controllers.AuthController
	Contacts  *controllers.ContactController
	Alerts    *controllers.AlertController
	Emergency *controllers.EmergencyController
	Test      *controllers.TestController
}

func SetupRouter(jwtSecret []byte, h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "SheShield API is running"})
	})

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/profile", middlewares.AuthMiddleware(jwtSecret), h.Auth.Profile)
	}

	// Public transport check
	api.POST("/test/send-test-sms", h.Test.SendTestSMS)

	// Protected contact routes
	contacts := api.Group("/contacts")
	contacts.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		contacts.GET("", h.Contacts.List)
		contacts.POST("", h.Contacts.Create)
		contacts.PUT("/:id", h.Contacts.Update)
		contacts.DELETE("/:id", h.Contacts.Delete)
	}

	// Protected emergency routes; contact CRUD is also mounted here as
	// an alias for older clients.
	emergency := api.Group("/emergency")
	emergency.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		emergency.GET("/contacts", h.Contacts.List)
		emergency.POST("/contacts", h.Contacts.Create)
		emergency.PUT("/contacts/:id", h.Contacts.Update)
		emergency.DELETE("/contacts/:id", h.Contacts.Delete)

		emergency.POST("/alert", h.Emergency.CreateAlert)
		emergency.POST("/alert/:contactId", h.Emergency.AlertContact)
		emergency.GET("/alerts", h.Alerts.List)
		emergency.PUT("/alerts/:id", h.Alerts.UpdateStatus)
		emergency.DELETE("/alerts/:id", h.Alerts.Delete)
	}

	return r
}
