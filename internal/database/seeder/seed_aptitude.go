package seeder

import (
	"context"
	"encoding/json"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/aptitude"
)

type AptitudeTestSeeder struct{}

func (AptitudeTestSeeder) Name() string { return "aptitude_tests" }

func (AptitudeTestSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "aptitude_tests", "id", "questions", "should_delete", "created_at"); err != nil {
		return err
	}

	questions := []aptitude.Question{
		{
			Question: "What is 15% of 200?",
			Answers: []aptitude.Answer{
				{Answer: "15"}, {Answer: "30", IsCorrect: true}, {Answer: "45"},
			},
		},
		{
			Question: "Which word is closest in meaning to 'diligent'?",
			Answers: []aptitude.Answer{
				{Answer: "Careless"}, {Answer: "Hardworking", IsCorrect: true}, {Answer: "Hesitant"}, {Answer: "Loud"},
			},
		},
		{
			Question: "Next in the sequence 2, 6, 12, 20, ...?",
			Answers: []aptitude.Answer{
				{Answer: "28"}, {Answer: "30", IsCorrect: true},
			},
		},
	}
	if err := aptitude.Validate(questions); err != nil {
		return err
	}

	b, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO aptitude_tests (id, questions) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		seedID("aptitude_test", "general"), b,
	)
	return err
}
