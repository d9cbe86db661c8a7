package seeder

import (
	"context"
	"fmt"

	"hr-portal/internal/database"
)

type SubjectsSeeder struct{}

func (SubjectsSeeder) Name() string { return "subjects" }

func (SubjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "subjects", "id", "name", "year", "semester", "department", "created_at"); err != nil {
		return err
	}

	items := []struct {
		Name       string
		Year       int
		Semester   int
		Department string
	}{
		{Name: "Calculus I", Year: 1, Semester: 1, Department: "Mathematics"},
		{Name: "Linear Algebra", Year: 1, Semester: 2, Department: "Mathematics"},
		{Name: "Data Structures", Year: 2, Semester: 1, Department: "Computer Science"},
		{Name: "Operating Systems", Year: 3, Semester: 1, Department: "Computer Science"},
		{Name: "Financial Accounting", Year: 1, Semester: 1, Department: "Business"},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO subjects (id, name, year, semester, department) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
				seedID("subject", it.Name), it.Name, it.Year, it.Semester, it.Department,
			); err != nil {
				return fmt.Errorf("subject %q: %w", it.Name, err)
			}
		}
		return nil
	})
}
