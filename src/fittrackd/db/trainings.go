package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// TrainingRepository handles training database operations.
// Every query is scoped by the owning user's id, so a training that belongs
// to another user behaves exactly like one that does not exist.
type TrainingRepository struct {
	db *Database
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *Database) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create inserts a training and its exercise entries in one transaction and
// returns the fully loaded training.
func (r *TrainingRepository) Create(userID int64, date time.Time, entries []TrainingEntry) (*Training, error) {
	tx, err := r.db.DB().Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO trainings (user_id, date) VALUES (?, ?)", userID, date.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}
	trainingID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get training id: %w", err)
	}

	if err := insertEntries(tx, trainingID, entries); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(trainingID, userID)
}

// GetByID retrieves a training owned by the given user, with its exercise
// entries eagerly loaded. Returns (nil, nil) when no owned training matches.
func (r *TrainingRepository) GetByID(trainingID, userID int64) (*Training, error) {
	t := &Training{}
	err := r.db.DB().QueryRow(`
		SELECT id, user_id, date FROM trainings
		WHERE id = ? AND user_id = ?
	`, trainingID, userID).Scan(&t.ID, &t.UserID, &t.Date)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get training: %w", err)
	}

	if err := r.loadEntries(t); err != nil {
		return nil, err
	}

	return t, nil
}

// ListForUser retrieves all trainings owned by the user, ordered by date
// descending, each with its exercise entries eagerly loaded.
func (r *TrainingRepository) ListForUser(userID int64) ([]Training, error) {
	rows, err := r.db.DB().Query(`
		SELECT id, user_id, date FROM trainings
		WHERE user_id = ?
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	defer rows.Close()

	trainings := []Training{}
	for rows.Next() {
		var t Training
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan training: %w", err)
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trainings: %w", err)
	}

	for i := range trainings {
		if err := r.loadEntries(&trainings[i]); err != nil {
			return nil, err
		}
	}

	return trainings, nil
}

// Update replaces the training's date and its entire exercise entry set in
// one transaction: the old entries are deleted and the new set inserted.
// This is a full replace, never a merge. Returns (nil, nil) when no owned
// training matches.
func (r *TrainingRepository) Update(trainingID, userID int64, date time.Time, entries []TrainingEntry) (*Training, error) {
	tx, err := r.db.DB().Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE trainings SET date = ? WHERE id = ? AND user_id = ?
	`, date.UTC(), trainingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update training: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	if _, err := tx.Exec("DELETE FROM training_exercises WHERE training_id = ?", trainingID); err != nil {
		return nil, fmt.Errorf("failed to delete training entries: %w", err)
	}

	if err := insertEntries(tx, trainingID, entries); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(trainingID, userID)
}

// Delete removes a training and its entries in one transaction. Children are
// deleted explicitly before the parent, on top of the FK cascade. Returns
// false when no owned training matches.
func (r *TrainingRepository) Delete(trainingID, userID int64) (bool, error) {
	tx, err := r.db.DB().Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM training_exercises
		WHERE training_id IN (SELECT id FROM trainings WHERE id = ? AND user_id = ?)
	`, trainingID, userID); err != nil {
		return false, fmt.Errorf("failed to delete training entries: %w", err)
	}

	res, err := tx.Exec("DELETE FROM trainings WHERE id = ? AND user_id = ?", trainingID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete training: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// insertEntries inserts the exercise entries for a training within tx
func insertEntries(tx *sql.Tx, trainingID int64, entries []TrainingEntry) error {
	for _, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO training_exercises (training_id, exercise_id, sets, reps, weight)
			VALUES (?, ?, ?, ?, ?)
		`, trainingID, e.ExerciseID, e.Sets, e.Reps, e.Weight)
		if err != nil {
			return fmt.Errorf("failed to insert training entry for exercise %d: %w", e.ExerciseID, err)
		}
	}
	return nil
}

// loadEntries populates t.Exercises with the training's entries in insertion
// order, each carrying its catalog exercise and muscle group.
func (r *TrainingRepository) loadEntries(t *Training) error {
	rows, err := r.db.DB().Query(`
		SELECT te.id, te.training_id, te.exercise_id, te.sets, te.reps, te.weight,
		       e.id, e.name, e.description, e.aliases, m.id, m.name
		FROM training_exercises te
		JOIN exercises e ON te.exercise_id = e.id
		JOIN muscle_groups m ON e.muscle_group_id = m.id
		WHERE te.training_id = ?
		ORDER BY te.id ASC
	`, t.ID)
	if err != nil {
		return fmt.Errorf("failed to load training entries: %w", err)
	}
	defer rows.Close()

	t.Exercises = []TrainingExercise{}
	for rows.Next() {
		var (
			te          TrainingExercise
			ex          Exercise
			aliasesJSON string
		)
		err := rows.Scan(&te.ID, &te.TrainingID, &te.ExerciseID, &te.Sets, &te.Reps, &te.Weight,
			&ex.ID, &ex.Name, &ex.Description, &aliasesJSON, &ex.MuscleGroup.ID, &ex.MuscleGroup.Name)
		if err != nil {
			return fmt.Errorf("failed to scan training entry: %w", err)
		}
		if err := json.Unmarshal([]byte(aliasesJSON), &ex.Aliases); err != nil {
			return fmt.Errorf("failed to unmarshal aliases for exercise %d: %w", ex.ID, err)
		}
		if ex.Aliases == nil {
			ex.Aliases = []string{}
		}
		te.Exercise = &ex
		t.Exercises = append(t.Exercises, te)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate training entries: %w", err)
	}

	return nil
}
