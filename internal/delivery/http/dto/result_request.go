package dto

type SubmitResultRequest struct {
	TestID string `json:"test_id" validate:"required,uuid"`
	// SelectedAnswers holds one pick per question in question order. Blank
	// entries are recorded as not answered.
	SelectedAnswers []string `json:"selected_answers"`
}

type InterviewScoreRequest struct {
	Commissioner string   `json:"commissioner" validate:"required"`
	Score        *float64 `json:"score" validate:"required"`
}

type UpdateInterviewScoreRequest struct {
	Field string   `json:"field" validate:"required"`
	Score *float64 `json:"score" validate:"required"`
}
