package db

// exerciseSeed is one predefined catalog entry
type exerciseSeed struct {
	name        string
	description string
	muscleGroup string
	aliases     []string
}

// catalogSeed is the predefined exercise catalog. Aliases include common
// alternative names in English and Russian, matched during search.
var catalogSeed = []exerciseSeed{
	{
		name:        "Bench Press",
		description: "A compound exercise that primarily targets the chest muscles, also working the shoulders and triceps.",
		muscleGroup: "chest",
		aliases:     []string{"Barbell Bench Press", "Flat Bench Press", "Жим лежа"},
	},
	{
		name:        "Squat",
		description: "A compound exercise that targets the quadriceps, hamstrings, and glutes.",
		muscleGroup: "legs",
		aliases:     []string{"Barbell Squat", "Back Squat", "Приседания со штангой"},
	},
	{
		name:        "Deadlift",
		description: "A compound exercise that works the entire posterior chain, including the back, glutes, and hamstrings.",
		muscleGroup: "back",
		aliases:     []string{"Conventional Deadlift", "Становая тяга"},
	},
	{
		name:        "Pull-up",
		description: "A bodyweight exercise that primarily targets the back and biceps.",
		muscleGroup: "back",
		aliases:     []string{"Chin-up", "Подтягивания"},
	},
	{
		name:        "Overhead Press",
		description: "A compound exercise that targets the shoulders and triceps.",
		muscleGroup: "shoulders",
		aliases:     []string{"Military Press", "Standing Press", "Жим штанги стоя"},
	},
	{
		name:        "Barbell Row",
		description: "A compound exercise that targets the back muscles.",
		muscleGroup: "back",
		aliases:     []string{"Bent Over Row", "Тяга штанги в наклоне"},
	},
	{
		name:        "Dumbbell Press",
		description: "A chest exercise that allows for greater range of motion than the barbell bench press.",
		muscleGroup: "chest",
		aliases:     []string{"Dumbbell Bench Press", "Жим гантелей лежа"},
	},
	{
		name:        "Romanian Deadlift",
		description: "A variation of the deadlift that focuses more on the hamstrings and glutes.",
		muscleGroup: "legs",
		aliases:     []string{"RDL", "Румынская тяга"},
	},
	{
		name:        "Lunges",
		description: "A unilateral leg exercise that targets the quadriceps, hamstrings, and glutes.",
		muscleGroup: "legs",
		aliases:     []string{"Walking Lunges", "Static Lunges", "Выпады"},
	},
	{
		name:        "Bicep Curl",
		description: "An isolation exercise that targets the biceps.",
		muscleGroup: "arms",
		aliases:     []string{"Dumbbell Curl", "Barbell Curl", "Сгибание рук на бицепс"},
	},
	{
		name:        "Tricep Pushdown",
		description: "An isolation exercise that targets the triceps.",
		muscleGroup: "arms",
		aliases:     []string{"Cable Pushdown", "Разгибание рук на блоке"},
	},
	{
		name:        "Leg Press",
		description: "A compound exercise that targets the quadriceps, hamstrings, and glutes.",
		muscleGroup: "legs",
		aliases:     []string{"Squat Press", "Жим ногами"},
	},
	{
		name:        "Lat Pulldown",
		description: "A compound exercise that targets the latissimus dorsi and other back muscles.",
		muscleGroup: "back",
		aliases:     []string{"Wide Grip Pulldown", "Тяга верхнего блока"},
	},
	{
		name:        "Shoulder Press",
		description: "A compound exercise that targets the deltoids and triceps.",
		muscleGroup: "shoulders",
		aliases:     []string{"Dumbbell Shoulder Press", "Жим гантелей сидя"},
	},
	{
		name:        "Calf Raise",
		description: "An isolation exercise that targets the calf muscles.",
		muscleGroup: "legs",
		aliases:     []string{"Standing Calf Raise", "Подъемы на носки", "Единорог"},
	},
}

// SeedExercises populates the exercise catalog with the predefined entries.
// Each exercise (and its muscle group) is created only if absent by name, so
// re-running the seed is a no-op and never duplicates or errors.
func (r *ExerciseRepository) SeedExercises() error {
	for _, seed := range catalogSeed {
		existing, err := r.GetByName(seed.name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		mg, err := r.GetOrCreateMuscleGroup(seed.muscleGroup)
		if err != nil {
			return err
		}

		if _, err := r.Create(seed.name, seed.description, mg.ID, seed.aliases); err != nil {
			return err
		}
	}

	return nil
}
