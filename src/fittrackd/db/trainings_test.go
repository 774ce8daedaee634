package db

import (
	"testing"
	"time"
)

// trainingFixture seeds the catalog, creates a user, and returns everything
// a training test needs.
type trainingFixture struct {
	trainings *TrainingRepository
	exercises *ExerciseRepository
	userID    int64
	otherID   int64
	benchID   int64
	squatID   int64
}

func setupTrainingFixture(t *testing.T) *trainingFixture {
	t.Helper()

	database := setupTestDB(t)

	exercises := NewExerciseRepository(database)
	if err := exercises.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	userID := insertTestUser(t, database, "alice@example.com", "alice")
	otherID := insertTestUser(t, database, "bob@example.com", "bob")

	bench, err := exercises.GetByName("Bench Press")
	if err != nil || bench == nil {
		t.Fatalf("failed to get Bench Press: %v", err)
	}
	squat, err := exercises.GetByName("Squat")
	if err != nil || squat == nil {
		t.Fatalf("failed to get Squat: %v", err)
	}

	return &trainingFixture{
		trainings: NewTrainingRepository(database),
		exercises: exercises,
		userID:    userID,
		otherID:   otherID,
		benchID:   bench.ID,
		squatID:   squat.ID,
	}
}

func insertTestUser(t *testing.T, database *Database, email, username string) int64 {
	t.Helper()

	res, err := database.DB().Exec(
		"INSERT INTO users (email, username, password_hash) VALUES (?, ?, ?)",
		email, username, "x",
	)
	if err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get test user id: %v", err)
	}
	return id
}

func TestTrainingCreate(t *testing.T) {
	f := setupTrainingFixture(t)

	date := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	training, err := f.trainings.Create(f.userID, date, []TrainingEntry{
		{ExerciseID: f.benchID, Sets: 3, Reps: 10, Weight: 80},
		{ExerciseID: f.squatID, Sets: 5, Reps: 5, Weight: 120},
	})
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	if training.UserID != f.userID {
		t.Fatalf("expected user id %d, got %d", f.userID, training.UserID)
	}
	if len(training.Exercises) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(training.Exercises))
	}

	// Entries come back in insertion order with the catalog exercise attached
	first := training.Exercises[0]
	if first.ExerciseID != f.benchID || first.Sets != 3 || first.Reps != 10 || first.Weight != 80 {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Exercise == nil || first.Exercise.Name != "Bench Press" {
		t.Fatalf("expected eager-loaded Bench Press, got %+v", first.Exercise)
	}
	if first.Exercise.MuscleGroup.Name != "chest" {
		t.Fatalf("expected muscle group chest, got %q", first.Exercise.MuscleGroup.Name)
	}
}

func TestTrainingCreate_EmptyEntries(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), nil)
	if err != nil {
		t.Fatalf("failed to create training without entries: %v", err)
	}
	if len(training.Exercises) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(training.Exercises))
	}
}

func TestTrainingGetByID_OwnershipScoped(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), []TrainingEntry{
		{ExerciseID: f.benchID, Sets: 3, Reps: 10, Weight: 80},
	})
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	// Owner sees it
	got, err := f.trainings.GetByID(training.ID, f.userID)
	if err != nil {
		t.Fatalf("failed to get training: %v", err)
	}
	if got == nil {
		t.Fatal("expected owner to see the training")
	}

	// Another user gets the same result as for a missing training
	other, err := f.trainings.GetByID(training.ID, f.otherID)
	if err != nil {
		t.Fatalf("unexpected error for foreign training: %v", err)
	}
	if other != nil {
		t.Fatal("expected foreign training to be invisible")
	}

	missing, err := f.trainings.GetByID(99999, f.userID)
	if err != nil {
		t.Fatalf("unexpected error for missing training: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing training")
	}
}

func TestTrainingListForUser(t *testing.T) {
	f := setupTrainingFixture(t)

	older := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)

	if _, err := f.trainings.Create(f.userID, older, nil); err != nil {
		t.Fatalf("failed to create training: %v", err)
	}
	if _, err := f.trainings.Create(f.userID, newer, nil); err != nil {
		t.Fatalf("failed to create training: %v", err)
	}
	if _, err := f.trainings.Create(f.otherID, newer, nil); err != nil {
		t.Fatalf("failed to create foreign training: %v", err)
	}

	trainings, err := f.trainings.ListForUser(f.userID)
	if err != nil {
		t.Fatalf("failed to list trainings: %v", err)
	}

	if len(trainings) != 2 {
		t.Fatalf("expected 2 trainings for user, got %d", len(trainings))
	}
	if !trainings[0].Date.After(trainings[1].Date) {
		t.Fatal("expected trainings ordered by date descending")
	}
}

func TestTrainingUpdate_FullReplace(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), []TrainingEntry{
		{ExerciseID: f.benchID, Sets: 3, Reps: 10, Weight: 80},
		{ExerciseID: f.squatID, Sets: 5, Reps: 5, Weight: 120},
	})
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	newDate := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	updated, err := f.trainings.Update(training.ID, f.userID, newDate, []TrainingEntry{
		{ExerciseID: f.squatID, Sets: 4, Reps: 8, Weight: 100},
	})
	if err != nil {
		t.Fatalf("failed to update training: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated training")
	}

	// Two entries replaced by exactly one - never merged
	if len(updated.Exercises) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(updated.Exercises))
	}
	entry := updated.Exercises[0]
	if entry.ExerciseID != f.squatID || entry.Sets != 4 || entry.Reps != 8 || entry.Weight != 100 {
		t.Fatalf("unexpected entry after replace: %+v", entry)
	}
	if !updated.Date.Equal(newDate) {
		t.Fatalf("expected date %v, got %v", newDate, updated.Date)
	}
}

func TestTrainingUpdate_EmptyEntriesClears(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), []TrainingEntry{
		{ExerciseID: f.benchID, Sets: 3, Reps: 10, Weight: 80},
	})
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	updated, err := f.trainings.Update(training.ID, f.userID, training.Date, nil)
	if err != nil {
		t.Fatalf("failed to update training: %v", err)
	}
	if len(updated.Exercises) != 0 {
		t.Fatalf("expected all entries removed, got %d", len(updated.Exercises))
	}
}

func TestTrainingUpdate_ForeignTraining(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), nil)
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	updated, err := f.trainings.Update(training.ID, f.otherID, time.Now().UTC(), nil)
	if err != nil {
		t.Fatalf("unexpected error updating foreign training: %v", err)
	}
	if updated != nil {
		t.Fatal("expected nil when updating a foreign training")
	}

	// Original must be untouched
	got, err := f.trainings.GetByID(training.ID, f.userID)
	if err != nil || got == nil {
		t.Fatalf("original training lost after foreign update attempt: %v", err)
	}
}

func TestTrainingDelete(t *testing.T) {
	f := setupTrainingFixture(t)

	training, err := f.trainings.Create(f.userID, time.Now().UTC(), []TrainingEntry{
		{ExerciseID: f.benchID, Sets: 3, Reps: 10, Weight: 80},
	})
	if err != nil {
		t.Fatalf("failed to create training: %v", err)
	}

	// Another user cannot delete it
	deleted, err := f.trainings.Delete(training.ID, f.otherID)
	if err != nil {
		t.Fatalf("unexpected error deleting foreign training: %v", err)
	}
	if deleted {
		t.Fatal("expected foreign delete to report not found")
	}

	// Owner can
	deleted, err = f.trainings.Delete(training.ID, f.userID)
	if err != nil {
		t.Fatalf("failed to delete training: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to succeed for the owner")
	}

	got, err := f.trainings.GetByID(training.ID, f.userID)
	if err != nil {
		t.Fatalf("unexpected error after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected training to be gone after delete")
	}

	// Deleting again reports not found
	deleted, err = f.trainings.Delete(training.ID, f.userID)
	if err != nil {
		t.Fatalf("unexpected error on double delete: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report not found")
	}
}
