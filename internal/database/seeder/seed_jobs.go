package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"hr-portal/internal/database"
	"hr-portal/internal/domain/job"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id",
		"title",
		"salary_scale",
		"reports_to",
		"purpose",
		"key_functions",
		"qualifications",
		"experiences",
		"competences",
		"should_delete",
		"created_at",
	); err != nil {
		return err
	}

	items := []job.Job{
		{
			Title:       "Assistant Lecturer, Computer Science",
			SalaryScale: "U5",
			ReportsTo:   "Head of Department",
			Purpose:     "Teach undergraduate courses and support departmental research.",
			KeyFunctions: []job.KeyFunction{
				{Function: "Prepare and deliver lectures and tutorials"},
				{Function: "Set and mark coursework and examinations"},
			},
			Qualifications: []job.Qualification{{Qualification: "Masters degree in Computer Science"}},
			Experiences:    []job.Experience{{Experience: "Two years of university teaching"}},
			Competences:    []job.Competence{{Competence: "Communication"}, {Competence: "Research"}},
		},
		{
			Title:          "Human Resource Officer",
			SalaryScale:    "U4",
			ReportsTo:      "Principal Human Resource Officer",
			Purpose:        "Run recruitment and staff records.",
			KeyFunctions:   []job.KeyFunction{{Function: "Coordinate recruitment exercises"}},
			Qualifications: []job.Qualification{{Qualification: "Degree in Human Resource Management"}},
			Experiences:    []job.Experience{{Experience: "Three years in a busy HR office"}},
			Competences:    []job.Competence{{Competence: "Integrity"}},
		},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			args, err := jobArgs(it)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO jobs (id, title, salary_scale, reports_to, purpose, key_functions, qualifications, experiences, competences)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				 ON CONFLICT (id) DO NOTHING`,
				append([]any{seedID("job", it.Title), it.Title, it.SalaryScale, it.ReportsTo, it.Purpose}, args...)...,
			); err != nil {
				return fmt.Errorf("job %q: %w", it.Title, err)
			}
		}
		return nil
	})
}

func jobArgs(j job.Job) ([]any, error) {
	out := make([]any, 0, 4)
	for _, v := range []any{j.KeyFunctions, j.Qualifications, j.Experiences, j.Competences} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
