package aptitude

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTest() Test {
	return Test{Questions: []Question{
		{Question: "2+2", Answers: []Answer{{Answer: "3"}, {Answer: "4", IsCorrect: true}, {Answer: "5"}}},
		{Question: "Capital of Uganda", Answers: []Answer{{Answer: "Kampala", IsCorrect: true}, {Answer: "Gulu"}}},
		{Question: "Largest lake", Answers: []Answer{{Answer: "Victoria", IsCorrect: true}, {Answer: "Kyoga"}}},
	}}
}

func TestGrade_RoundsPercentage(t *testing.T) {
	score, selected := Grade(sampleTest(), []string{"4", "Gulu", "Victoria"})
	assert.Equal(t, float64(67), score)
	require.Len(t, selected, 3)
	assert.Equal(t, "Gulu", selected[1].SelectedAnswer)
}

func TestGrade_MissingPicksAreNotAnswered(t *testing.T) {
	score, selected := Grade(sampleTest(), []string{"4"})
	assert.Equal(t, float64(33), score)
	assert.Equal(t, NotAnswered, selected[1].SelectedAnswer)
	assert.Equal(t, NotAnswered, selected[2].SelectedAnswer)
}

func TestGrade_AllCorrect(t *testing.T) {
	score, _ := Grade(sampleTest(), []string{"4", "Kampala", "Victoria"})
	assert.Equal(t, float64(100), score)
}

func TestGrade_EmptyTest(t *testing.T) {
	score, selected := Grade(Test{}, []string{"x"})
	assert.Zero(t, score)
	assert.Empty(t, selected)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sampleTest().Questions))

	cases := map[string][]Question{
		"empty":          nil,
		"two correct":    {{Question: "q", Answers: []Answer{{Answer: "a", IsCorrect: true}, {Answer: "b", IsCorrect: true}}}},
		"none correct":   {{Question: "q", Answers: []Answer{{Answer: "a"}, {Answer: "b"}}}},
		"too many":       {{Question: "q", Answers: []Answer{{Answer: "a", IsCorrect: true}, {Answer: "b"}, {Answer: "c"}, {Answer: "d"}, {Answer: "e"}, {Answer: "f"}}}},
		"blank answer":   {{Question: "q", Answers: []Answer{{Answer: "a", IsCorrect: true}, {Answer: " "}}}},
		"blank question": {{Question: "", Answers: []Answer{{Answer: "a", IsCorrect: true}, {Answer: "b"}}}},
	}
	for name, qs := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(Validate(qs), ErrInvalidTest))
		})
	}
}

func TestRedacted_StripsCorrectness(t *testing.T) {
	orig := sampleTest()
	red := orig.Redacted()
	for _, q := range red.Questions {
		for _, a := range q.Answers {
			assert.False(t, a.IsCorrect)
		}
	}
	assert.True(t, orig.Questions[0].Answers[1].IsCorrect)
}
