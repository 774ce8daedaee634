package api

import (
	"net/http"
	"time"

	"github.com/da-maltsev/fit-track/src/common/version"
	"github.com/gin-gonic/gin"
)

// handleRoot returns API discovery information
func (a *API) handleRoot(c *gin.Context) {
	info := APIInfo{
		Name:        "fittrackd",
		Description: "Fit-Track workout tracking API server",
		Version:     VersionInfo.Version,
		Endpoints: APIInfoEndpoints{
			Health:    "/health",
			Users:     "/users",
			Login:     "/users/login",
			Exercises: "/exercises",
			Trainings: "/trainings",
			Docs:      "/docs/index.html",
		},
	}

	c.JSON(http.StatusOK, info)
}

// handleHealth returns the current health status of the server
func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion returns version and build information for the server
func (a *API) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Version:   VersionInfo.Version,
		BuildDate: VersionInfo.BuildDate,
		GitCommit: VersionInfo.GitCommit,
		GoVersion: version.GoVersion(),
	})
}
