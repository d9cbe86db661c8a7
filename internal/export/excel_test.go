package export

import (
	"bytes"
	"testing"
	"time"

	"hr-portal/internal/domain/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteResults(t *testing.T) {
	complete := result.Result{ApplicantName: "Jane Doe", JobPost: "Lecturer", AptitudeScore: 80, CreatedAt: time.Now()}
	for _, c := range result.Commissioners {
		require.NoError(t, complete.ApplyScore(c, 60))
	}
	partial := result.Result{ApplicantName: "John Roe", JobPost: "Registrar", AptitudeScore: 45, CreatedAt: time.Now()}
	require.NoError(t, partial.ApplyScore(result.CommOne, 50))

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []result.Result{complete, partial}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ResultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, resultHeaders, rows[0])

	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "80", rows[1][2])
	assert.Equal(t, "60", rows[1][9])
	assert.Equal(t, "70", rows[1][10])

	assert.Equal(t, "John Roe", rows[2][0])
	assert.Equal(t, "50", rows[2][3])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "", rows[2][10])
}

func TestWriteResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ResultsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
