package api

import (
	"time"

	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/da-maltsev/fit-track/src/fittrackd/db"
)

// API holds all handler instances and dependencies
type API struct {
	Auth *auth.Handler

	userRepo     *auth.UserRepository
	exerciseRepo *db.ExerciseRepository
	trainingRepo *db.TrainingRepository
	tokens       *auth.TokenService
}

// Config contains API configuration options
type Config struct {
	UserRepo     *auth.UserRepository
	ExerciseRepo *db.ExerciseRepository
	TrainingRepo *db.TrainingRepository
	Tokens       *auth.TokenService
}

// TrainingEntryRequest is one exercise entry in a training request body
type TrainingEntryRequest struct {
	ExerciseID int64   `json:"exercise_id" binding:"required"`
	Sets       int     `json:"sets" binding:"required,gt=0"`
	Reps       int     `json:"reps" binding:"required,gt=0"`
	Weight     float64 `json:"weight" binding:"required,gt=0"`
}

// TrainingRequest is the create/update training request body. Exercises may
// be empty; on update the stored entry set is replaced with exactly what is
// sent.
type TrainingRequest struct {
	Date      time.Time              `json:"date" binding:"required"`
	Exercises []TrainingEntryRequest `json:"exercises" binding:"dive"`
}

// MessageResponse is a simple confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// APIInfo describes the service for the root discovery endpoint
type APIInfo struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Version     string           `json:"version"`
	Endpoints   APIInfoEndpoints `json:"endpoints"`
}

// APIInfoEndpoints lists the main endpoint groups
type APIInfoEndpoints struct {
	Health    string `json:"health"`
	Users     string `json:"users"`
	Login     string `json:"login"`
	Exercises string `json:"exercises"`
	Trainings string `json:"trainings"`
	Docs      string `json:"docs"`
}

// HealthResponse is the health endpoint body
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionResponse is the version endpoint body
type VersionResponse struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

// entriesFromRequest converts request entries to storage entries
func entriesFromRequest(entries []TrainingEntryRequest) []db.TrainingEntry {
	out := make([]db.TrainingEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, db.TrainingEntry{
			ExerciseID: e.ExerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
		})
	}
	return out
}
