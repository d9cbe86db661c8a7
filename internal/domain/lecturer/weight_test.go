package lecturer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageWeight(t *testing.T) {
	cases := []struct {
		q, e, p string
		want    float64
	}{
		{"PhD", "Above 10 years", "Above 7", 60.0 / 12},
		{"Certificate", "0-5 years", "1-3", 31.0 / 12},
		{"Degree", "6-10 years", "4-6", 43.0 / 12},
		{"Masters", "", "", 20.0 / 12},
		{"Diploma", "forever", "none", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, AverageWeight(tc.q, tc.e, tc.p), 1e-9, "%s/%s/%s", tc.q, tc.e, tc.p)
	}
}

func TestTeaches(t *testing.T) {
	l := Lecturer{Subjects: []string{"Algebra", "Physics"}}
	assert.True(t, l.Teaches("Physics"))
	assert.False(t, l.Teaches("physics"))
}
