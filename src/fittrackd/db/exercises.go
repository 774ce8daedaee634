package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// scanner abstracts sql.Row and sql.Rows for scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

// ExerciseRepository handles exercise catalog database operations.
// The catalog is populated by the startup seed and read-only at request time.
type ExerciseRepository struct {
	db *Database
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *Database) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

const exerciseColumns = `
	e.id, e.name, e.description, e.aliases, m.id, m.name
`

// scanExercise scans one joined exercise row (exercise + muscle group)
func (r *ExerciseRepository) scanExercise(row scanner) (*Exercise, error) {
	var (
		ex          Exercise
		aliasesJSON string
	)
	err := row.Scan(&ex.ID, &ex.Name, &ex.Description, &aliasesJSON,
		&ex.MuscleGroup.ID, &ex.MuscleGroup.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan exercise: %w", err)
	}

	if err := json.Unmarshal([]byte(aliasesJSON), &ex.Aliases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aliases for exercise %d: %w", ex.ID, err)
	}
	if ex.Aliases == nil {
		ex.Aliases = []string{}
	}

	return &ex, nil
}

// GetByID retrieves an exercise with its muscle group.
// Returns (nil, nil) when no exercise matches.
func (r *ExerciseRepository) GetByID(id int64) (*Exercise, error) {
	row := r.db.DB().QueryRow(`
		SELECT `+exerciseColumns+`
		FROM exercises e
		JOIN muscle_groups m ON e.muscle_group_id = m.id
		WHERE e.id = ?
	`, id)
	return r.scanExercise(row)
}

// GetByName retrieves an exercise by its exact name.
// Returns (nil, nil) when no exercise matches.
func (r *ExerciseRepository) GetByName(name string) (*Exercise, error) {
	row := r.db.DB().QueryRow(`
		SELECT `+exerciseColumns+`
		FROM exercises e
		JOIN muscle_groups m ON e.muscle_group_id = m.id
		WHERE e.name = ?
	`, name)
	return r.scanExercise(row)
}

// List retrieves exercises ordered by name ascending, optionally filtered.
// search matches case-insensitively against the exercise name or any alias
// (substring). muscleGroup matches case-insensitively against the muscle
// group name (substring). Both filters apply conjunctively.
func (r *ExerciseRepository) List(search, muscleGroup string) ([]Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises e
		JOIN muscle_groups m ON e.muscle_group_id = m.id
	`
	var (
		conditions []string
		args       []interface{}
	)

	if search != "" {
		pattern := "%" + search + "%"
		conditions = append(conditions, `(LOWER(e.name) LIKE LOWER(?) OR EXISTS (
			SELECT 1 FROM json_each(e.aliases) WHERE LOWER(json_each.value) LIKE LOWER(?)
		))`)
		args = append(args, pattern, pattern)
	}

	if muscleGroup != "" {
		conditions = append(conditions, "LOWER(m.name) LIKE LOWER(?)")
		args = append(args, "%"+muscleGroup+"%")
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY e.name ASC"

	rows, err := r.db.DB().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		ex, err := r.scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}

	return exercises, nil
}

// GetOrCreateMuscleGroup returns the muscle group with the given name,
// creating it first if absent.
func (r *ExerciseRepository) GetOrCreateMuscleGroup(name string) (*MuscleGroup, error) {
	mg := &MuscleGroup{}
	err := r.db.DB().QueryRow(
		"SELECT id, name FROM muscle_groups WHERE name = ?", name,
	).Scan(&mg.ID, &mg.Name)
	if err == nil {
		return mg, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up muscle group %q: %w", name, err)
	}

	res, err := r.db.DB().Exec("INSERT INTO muscle_groups (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create muscle group %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get muscle group id: %w", err)
	}

	return &MuscleGroup{ID: id, Name: name}, nil
}

// Create inserts a new exercise under the given muscle group
func (r *ExerciseRepository) Create(name, description string, muscleGroupID int64, aliases []string) (*Exercise, error) {
	if aliases == nil {
		aliases = []string{}
	}
	aliasesJSON, err := json.Marshal(aliases)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aliases: %w", err)
	}

	res, err := r.db.DB().Exec(`
		INSERT INTO exercises (name, description, muscle_group_id, aliases)
		VALUES (?, ?, ?, ?)
	`, name, description, muscleGroupID, string(aliasesJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise %q: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise id: %w", err)
	}

	return r.GetByID(id)
}

// Count returns the total number of exercises in the catalog
func (r *ExerciseRepository) Count() (int, error) {
	var count int
	if err := r.db.DB().QueryRow("SELECT COUNT(*) FROM exercises").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return count, nil
}
