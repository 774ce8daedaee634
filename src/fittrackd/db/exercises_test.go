package db

import "testing"

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	database, err := New(Config{
		PersistPath: "",
		LoadOnStart: false,
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.DB().Close() })

	return database
}

func TestSeedExercises(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("failed to count exercises: %v", err)
	}
	if count != len(catalogSeed) {
		t.Fatalf("expected %d exercises, got %d", len(catalogSeed), count)
	}

	bench, err := repo.GetByName("Bench Press")
	if err != nil {
		t.Fatalf("failed to get Bench Press: %v", err)
	}
	if bench == nil {
		t.Fatal("expected Bench Press in the seeded catalog")
	}
	if bench.MuscleGroup.Name != "chest" {
		t.Fatalf("expected muscle group chest, got %q", bench.MuscleGroup.Name)
	}
	if len(bench.Aliases) != 3 {
		t.Fatalf("expected 3 aliases, got %d", len(bench.Aliases))
	}
}

func TestSeedExercises_Idempotent(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("failed to count exercises: %v", err)
	}
	if count != len(catalogSeed) {
		t.Fatalf("re-seeding duplicated entries: expected %d, got %d", len(catalogSeed), count)
	}
}

func TestExerciseGetByID(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	squat, err := repo.GetByName("Squat")
	if err != nil {
		t.Fatalf("failed to get Squat by name: %v", err)
	}

	byID, err := repo.GetByID(squat.ID)
	if err != nil {
		t.Fatalf("failed to get exercise by id: %v", err)
	}
	if byID == nil || byID.Name != "Squat" {
		t.Fatalf("expected Squat, got %+v", byID)
	}

	missing, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("unexpected error for missing exercise: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing exercise, got %+v", missing)
	}
}

func TestExerciseList_SearchByName(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	results, err := repo.List("deadlift", "")
	if err != nil {
		t.Fatalf("failed to search exercises: %v", err)
	}

	// Deadlift and Romanian Deadlift
	if len(results) != 2 {
		t.Fatalf("expected 2 results for 'deadlift', got %d", len(results))
	}
	for _, ex := range results {
		if ex.Name != "Deadlift" && ex.Name != "Romanian Deadlift" {
			t.Fatalf("unexpected result: %q", ex.Name)
		}
	}
}

func TestExerciseList_SearchByAlias(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	// "RDL" only appears as an alias of Romanian Deadlift
	results, err := repo.List("rdl", "")
	if err != nil {
		t.Fatalf("failed to search exercises: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Romanian Deadlift" {
		t.Fatalf("expected Romanian Deadlift via alias search, got %+v", results)
	}

	// Russian aliases are searchable too
	results, err = repo.List("Жим лежа", "")
	if err != nil {
		t.Fatalf("failed to search exercises: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Bench Press" {
		t.Fatalf("expected Bench Press via Russian alias, got %+v", results)
	}
}

func TestExerciseList_FilterByMuscleGroup(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	results, err := repo.List("", "chest")
	if err != nil {
		t.Fatalf("failed to filter exercises: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected chest exercises")
	}
	for _, ex := range results {
		if ex.MuscleGroup.Name != "chest" {
			t.Fatalf("expected only chest exercises, got %q (%s)", ex.MuscleGroup.Name, ex.Name)
		}
	}

	// Combined filters apply conjunctively
	results, err = repo.List("press", "chest")
	if err != nil {
		t.Fatalf("failed to filter exercises: %v", err)
	}
	for _, ex := range results {
		if ex.MuscleGroup.Name != "chest" {
			t.Fatalf("combined filter leaked %q (%s)", ex.MuscleGroup.Name, ex.Name)
		}
	}
}

func TestExerciseList_OrderedByName(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.SeedExercises(); err != nil {
		t.Fatalf("failed to seed exercises: %v", err)
	}

	results, err := repo.List("", "")
	if err != nil {
		t.Fatalf("failed to list exercises: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Name > results[i].Name {
			t.Fatalf("list not ordered by name: %q before %q", results[i-1].Name, results[i].Name)
		}
	}
}

func TestGetOrCreateMuscleGroup(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	first, err := repo.GetOrCreateMuscleGroup("core")
	if err != nil {
		t.Fatalf("failed to create muscle group: %v", err)
	}

	second, err := repo.GetOrCreateMuscleGroup("core")
	if err != nil {
		t.Fatalf("failed to get existing muscle group: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same muscle group, got ids %d and %d", first.ID, second.ID)
	}
}
