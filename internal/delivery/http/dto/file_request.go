package dto

import (
	"hr-portal/internal/domain/applicant"
	"hr-portal/internal/usecase"
)

// FileRequest is an applicant submission. Documents maps a document kind
// ("image", "uce", "proof_one", ...) to the storage id returned by /uploads.
type FileRequest struct {
	Name      string              `json:"name" validate:"required"`
	Post      string              `json:"post" validate:"required"`
	Email     string              `json:"email" validate:"required,email"`
	Telephone string              `json:"telephone" validate:"required"`
	Type      *applicant.FileType `json:"type" validate:"omitempty,oneof=image csv pdf ppt pptx doc docx xlsx"`
	Documents applicant.Documents `json:"documents" validate:"required"`
	Profile   applicant.Profile   `json:"profile"`
}

func (r FileRequest) ToInput() usecase.FileInput {
	return usecase.FileInput{
		Name:      r.Name,
		Post:      r.Post,
		Email:     r.Email,
		Telephone: r.Telephone,
		Type:      r.Type,
		Documents: r.Documents,
		Profile:   r.Profile,
	}
}
