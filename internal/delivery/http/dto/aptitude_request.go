package dto

import "hr-portal/internal/domain/aptitude"

type AptitudeTestRequest struct {
	Questions []aptitude.Question `json:"questions" validate:"required,min=1,dive"`
}
