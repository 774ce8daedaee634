// Package api wires HTTP routes, middleware, and handlers for fittrackd.
package api

import (
	"github.com/da-maltsev/fit-track/src/common/logs"
	"github.com/da-maltsev/fit-track/src/common/version"
	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the logger for the api package and subpackages
func SetLogger(l *logs.Logger) {
	log = l
	auth.SetLogger(l)
}

// VersionInfo is the build version reported by the root and version endpoints
var VersionInfo *version.Info

// SetVersionInfo sets the version info reported by the api package
func SetVersionInfo(v *version.Info) {
	VersionInfo = v
}

// New creates a new API instance with all handlers wired
func New(cfg Config) *API {
	return &API{
		Auth: auth.NewHandler(cfg.UserRepo, cfg.Tokens),

		userRepo:     cfg.UserRepo,
		exerciseRepo: cfg.ExerciseRepo,
		trainingRepo: cfg.TrainingRepo,
		tokens:       cfg.Tokens,
	}
}
