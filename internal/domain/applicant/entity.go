package applicant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("applicant file not found")
	ErrNoApplication = errors.New("no application on record")
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeCSV   FileType = "csv"
	FileTypePDF   FileType = "pdf"
	FileTypePPT   FileType = "ppt"
	FileTypePPTX  FileType = "pptx"
	FileTypeDOC   FileType = "doc"
	FileTypeDOCX  FileType = "docx"
	FileTypeXLSX  FileType = "xlsx"
)

// DocumentKind names one of the uploaded supporting documents of a file.
type DocumentKind string

const (
	DocImage      DocumentKind = "image"
	DocUCE        DocumentKind = "uce"
	DocUACE       DocumentKind = "uace"
	DocPLE        DocumentKind = "ple"
	DocTranscript DocumentKind = "transcript"
	DocUniversity DocumentKind = "university"
	DocProofOne   DocumentKind = "proof_one"
	DocProofTwo   DocumentKind = "proof_two"
	DocProofThree DocumentKind = "proof_three"
	DocProofFour  DocumentKind = "proof_four"
	DocProofFive  DocumentKind = "proof_five"
	DocProofSix   DocumentKind = "proof_six"
)

// DocumentKinds lists every kind in display order.
var DocumentKinds = []DocumentKind{
	DocImage, DocUCE, DocUACE, DocPLE, DocTranscript, DocUniversity,
	DocProofOne, DocProofTwo, DocProofThree, DocProofFour, DocProofFive, DocProofSix,
}

// RequiredDocuments must be present on every submission.
var RequiredDocuments = []DocumentKind{DocImage, DocUCE}

func IsDocumentKind(k DocumentKind) bool {
	for _, it := range DocumentKinds {
		if it == k {
			return true
		}
	}
	return false
}

// Documents maps a document kind to its storage key.
type Documents map[DocumentKind]string

func (d Documents) Missing() []DocumentKind {
	var out []DocumentKind
	for _, k := range RequiredDocuments {
		if d[k] == "" {
			out = append(out, k)
		}
	}
	return out
}

type School struct {
	Year       string `json:"year" validate:"required"`
	SchoolName string `json:"school_name" validate:"required"`
	Award      string `json:"award" validate:"required"`
}

type Employment struct {
	Year     string `json:"year" validate:"required"`
	Position string `json:"position" validate:"required"`
	Employer string `json:"employer" validate:"required"`
}

type Grade struct {
	Subject string `json:"subject" validate:"required"`
	Grade   string `json:"grade" validate:"required"`
}

type Referee struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type Officer struct {
	Name    string `json:"name" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

// Profile holds the personal, education and employment record of an applicant.
type Profile struct {
	DateOfBirth        string       `json:"date_of_birth" validate:"required"`
	Residence          string       `json:"residence" validate:"required,oneof=temporary permanent"`
	PostalAddress      string       `json:"postal_address,omitempty"`
	Nationality        string       `json:"nationality" validate:"required"`
	NIN                string       `json:"nin" validate:"required"`
	HomeDistrict       string       `json:"home_district" validate:"required"`
	Subcounty          string       `json:"subcounty" validate:"required"`
	Village            string       `json:"village" validate:"required"`
	PresentMinistry    string       `json:"present_ministry,omitempty"`
	RegistrationNumber string       `json:"registration_number,omitempty"`
	PresentPost        string       `json:"present_post,omitempty"`
	PresentSalary      string       `json:"present_salary,omitempty"`
	TermsOfEmployment  string       `json:"terms_of_employment,omitempty"`
	MaritalStatus      string       `json:"marital_status" validate:"required"`
	Children           string       `json:"children" validate:"required"`
	Schools            []School     `json:"schools" validate:"dive"`
	EmploymentRecord   []Employment `json:"employment_record" validate:"dive"`
	UCEYear            string       `json:"uce_year" validate:"required"`
	UCERecord          []Grade      `json:"uce_record" validate:"dive"`
	UACEYear           string       `json:"uace_year,omitempty"`
	UACERecord         []Grade      `json:"uace_record,omitempty" validate:"dive"`
	Conviction         string       `json:"conviction" validate:"required"`
	Available          string       `json:"available" validate:"required"`
	ReferenceRecord    []Referee    `json:"reference_record" validate:"dive"`
	OfficerRecord      []Officer    `json:"officer_record" validate:"dive"`
	Consentment        string       `json:"consentment" validate:"required,oneof=yes no"`
}

// File is one applicant submission.
type File struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Post         string    `json:"post"`
	Email        string    `json:"email"`
	Telephone    string    `json:"telephone"`
	Type         *FileType `json:"type,omitempty"`
	Documents    Documents `json:"documents"`
	Profile      Profile   `json:"profile"`
	ShouldDelete bool      `json:"should_delete"`
	CreatedAt    time.Time `json:"created_at"`
}

// View is a file as presented to reviewers: document keys resolved to URLs and,
// for rejected applicants, the recorded reason.
type View struct {
	File
	DocumentURLs map[DocumentKind]*string `json:"document_urls"`
	Reason       *string                  `json:"reason,omitempty"`
}
