package db

import "time"

// MuscleGroup categorizes exercises (e.g. legs, back)
type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise is a catalog entry. Aliases are alternative names matched during
// search; their order is irrelevant.
type Exercise struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Aliases     []string    `json:"aliases"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
}

// Training is one logged workout session owned by a user
type Training struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Date      time.Time          `json:"date"`
	Exercises []TrainingExercise `json:"exercises"`
}

// TrainingExercise is one exercise performed within a training
type TrainingExercise struct {
	ID         int64   `json:"id"`
	TrainingID int64   `json:"training_id"`
	ExerciseID int64   `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`

	// Exercise carries the referenced catalog entry, eagerly loaded by the
	// training queries so responses never need a second fetch.
	Exercise *Exercise `json:"exercise,omitempty"`
}

// TrainingEntry is the input for one exercise performed within a training,
// used by TrainingRepository.Create and Update.
type TrainingEntry struct {
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     float64
}
