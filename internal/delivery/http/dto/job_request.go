package dto

import (
	"hr-portal/internal/domain/job"
	"hr-portal/internal/usecase"
)

type JobRequest struct {
	Title          string              `json:"title" validate:"required,max=200"`
	SalaryScale    string              `json:"salary_scale"`
	ReportsTo      string              `json:"reports_to"`
	Purpose        string              `json:"purpose"`
	KeyFunctions   []job.KeyFunction   `json:"key_functions" validate:"dive"`
	Qualifications []job.Qualification `json:"qualifications" validate:"dive"`
	Experiences    []job.Experience    `json:"experiences" validate:"dive"`
	Competences    []job.Competence    `json:"competences" validate:"dive"`
}

func (r JobRequest) ToInput() usecase.JobInput {
	return usecase.JobInput{
		Title:          r.Title,
		SalaryScale:    r.SalaryScale,
		ReportsTo:      r.ReportsTo,
		Purpose:        r.Purpose,
		KeyFunctions:   r.KeyFunctions,
		Qualifications: r.Qualifications,
		Experiences:    r.Experiences,
		Competences:    r.Competences,
	}
}
