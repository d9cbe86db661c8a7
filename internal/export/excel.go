package export

import (
	"fmt"
	"io"

	"hr-portal/internal/domain/result"

	"github.com/xuri/excelize/v2"
)

const ResultsSheet = "Results"

var resultHeaders = []string{
	"Applicant", "Post", "Aptitude Score",
	"Commissioner 1", "Commissioner 2", "Commissioner 3", "Commissioner 4", "Commissioner 5", "Technical",
	"Oral Interview Average", "Overall Average", "Submitted",
}

// WriteResults writes an interview results workbook to w.
func WriteResults(w io.Writer, results []result.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, h := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ResultsSheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(resultHeaders), 1)
	if err := f.SetCellStyle(ResultsSheet, "A1", last, headerStyle); err != nil {
		return err
	}
	_ = f.SetColWidth(ResultsSheet, "A", "B", 28)
	_ = f.SetColWidth(ResultsSheet, "C", "L", 16)

	for i, r := range results {
		row := i + 2
		values := []any{r.ApplicantName, r.JobPost, r.AptitudeScore}
		for _, c := range result.Commissioners {
			values = append(values, cellValue(r.Scores.Get(c)))
		}
		values = append(values,
			cellValue(r.OralInterviewAverage),
			cellValue(r.OverallAverageScore),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(ResultsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	return f.Write(w)
}

// cellValue leaves a blank cell for scores not yet recorded.
func cellValue(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
