// Package dto contains the request and response shapes of the HTTP API.
package dto

// CandidateSearchRequest carries the search criteria. The same shape binds
// from query parameters on GET and from a JSON body on POST.
type CandidateSearchRequest struct {
	CandidateID        string `form:"candidate_id" json:"candidate_id"`
	IDNumber           string `form:"id_number" json:"id_number"`
	FullName           string `form:"full_name" json:"full_name"`
	BirthDate          string `form:"birth_date" json:"birth_date"`
	PhoneNumber        string `form:"phone_number" json:"phone_number"`
	Email              string `form:"email" json:"email"`
	Address            string `form:"address" json:"address"`
	RegistrationNumber string `form:"registration_number" json:"registration_number"`
	ExamID             string `form:"exam_id" json:"exam_id"`
	SchoolID           string `form:"school_id" json:"school_id"`
	CaseSensitive      bool   `form:"case_sensitive" json:"case_sensitive"`
	Page               int    `form:"page" json:"page"`
	PageSize           int    `form:"page_size" json:"page_size"`
}

// CandidateInfoRequest carries the profile include flags.
type CandidateInfoRequest struct {
	IncludeEducation    bool `form:"include_education" json:"include_education"`
	IncludeExams        bool `form:"include_exams" json:"include_exams"`
	IncludeAchievements bool `form:"include_achievements" json:"include_achievements"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Machine-readable error codes.
const (
	ErrCodeMissingIdentification = "missing_identification"
	ErrCodeCandidateNotFound     = "candidate_not_found"
	ErrCodeInvalidRequest        = "invalid_request"
)
