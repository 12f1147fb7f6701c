package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(s.requestID(), s.recovery(), s.requestLogger())
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
	})

	api := router.Group("/api")
	{
		health := api.Group("/health")
		health.GET("/liveness", s.handleLiveness)
		health.GET("/readiness", s.handleReadiness)

		api.POST("/users", s.handleRegister)

		auth := api.Group("/auth")
		auth.POST("", s.handleLogin)
		auth.GET("", s.authGate(), s.handleMe)

		contacts := api.Group("/contacts", s.authGate())
		contacts.GET("", s.handleListContacts)
		contacts.POST("", s.handleCreateContact)
		contacts.PUT("/:id", s.handleUpdateContact)
		contacts.DELETE("/:id", s.handleDeleteContact)
	}

	return router
}
