package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes configures all API routes on the given router
func (a *API) RegisterRoutes(router *gin.Engine) {
	// Root endpoint - API discovery
	router.GET("/", a.handleRoot)
	router.GET("/health", a.handleHealth)
	router.GET("/version", a.handleVersion)

	// Interactive API documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// User routes - registration, login, and profile lookup are public
	users := router.Group("/users")
	{
		users.POST("", a.Auth.HandleCreate)
		users.POST("/login", a.Auth.HandleLogin)
		users.GET("/:id", a.Auth.HandleGetUser)
	}

	// Current user profile requires auth
	usersAuth := router.Group("/users")
	usersAuth.Use(a.authRequired())
	{
		usersAuth.GET("/me", a.Auth.HandleMe)
	}

	// Exercise catalog - read-only, requires auth
	exercises := router.Group("/exercises")
	exercises.Use(a.authRequired())
	{
		exercises.GET("", a.handleListExercises)
		exercises.GET("/:id", a.handleGetExercise)
	}

	// Training log - fully owned by the authenticated user
	trainings := router.Group("/trainings")
	trainings.Use(a.authRequired())
	{
		trainings.POST("", a.handleCreateTraining)
		trainings.GET("", a.handleListTrainings)
		trainings.GET("/:id", a.handleGetTraining)
		trainings.PUT("/:id", a.handleUpdateTraining)
		trainings.DELETE("/:id", a.handleDeleteTraining)
	}
}
