package search

import "time"

// CandidateBasicInfo is the identity slice of a candidate returned by every
// search and lookup.
type CandidateBasicInfo struct {
	CandidateID           string     `json:"candidate_id"`
	FullName              string     `json:"full_name"`
	BirthDate             *time.Time `json:"birth_date,omitempty"`
	IDNumber              string     `json:"id_number,omitempty"`
	PhoneNumber           string     `json:"phone_number,omitempty"`
	Email                 string     `json:"email,omitempty"`
	PrimaryAddress        string     `json:"primary_address,omitempty"`
	SecondaryAddress      string     `json:"secondary_address,omitempty"`
	IDCardImageURL        string     `json:"id_card_image_url,omitempty"`
	CandidateCardImageURL string     `json:"candidate_card_image_url,omitempty"`
}

// SchoolInfo merges School node properties with STUDIES_AT edge attributes.
type SchoolInfo struct {
	SchoolID            string `json:"school_id"`
	SchoolName          string `json:"school_name"`
	StartYear           *int64 `json:"start_year,omitempty"`
	EndYear             *int64 `json:"end_year,omitempty"`
	EducationLevel      string `json:"education_level,omitempty"`
	AcademicPerformance string `json:"academic_performance,omitempty"`
	AdditionalInfo      string `json:"additional_info,omitempty"`
}

// MajorInfo merges Major node properties with STUDIES_MAJOR edge attributes.
type MajorInfo struct {
	MajorID    string `json:"major_id"`
	MajorName  string `json:"major_name"`
	SchoolID   string `json:"school_id,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
	StartYear  *int64 `json:"start_year,omitempty"`
	EndYear    *int64 `json:"end_year,omitempty"`
}

// DegreeInfo describes a degree held by a candidate.
type DegreeInfo struct {
	DegreeID            string     `json:"degree_id"`
	DegreeName          string     `json:"degree_name"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	IssuingOrganization string     `json:"issuing_organization,omitempty"`
	MajorID             string     `json:"major_id,omitempty"`
	MajorName           string     `json:"major_name,omitempty"`
	SchoolID            string     `json:"school_id,omitempty"`
	SchoolName          string     `json:"school_name,omitempty"`
}

// EducationInfo groups a candidate's education records. Lists are empty, not
// nil, when the candidate has no records in a category.
type EducationInfo struct {
	Schools []SchoolInfo `json:"schools"`
	Majors  []MajorInfo  `json:"majors"`
	Degrees []DegreeInfo `json:"degrees"`
}

// ExamInfo merges Exam node properties with ATTENDS_EXAM edge attributes.
type ExamInfo struct {
	ExamID             string     `json:"exam_id"`
	ExamName           string     `json:"exam_name"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	RegistrationDate   *time.Time `json:"registration_date,omitempty"`
	Status             string     `json:"status,omitempty"`
}

// ExamScheduleInfo describes one scheduled sitting, room details coming from
// the HAS_EXAM_SCHEDULE edge.
type ExamScheduleInfo struct {
	ExamScheduleID string     `json:"exam_schedule_id"`
	ExamID         string     `json:"exam_id"`
	ExamName       string     `json:"exam_name"`
	SubjectID      string     `json:"subject_id"`
	SubjectName    string     `json:"subject_name"`
	RoomID         string     `json:"room_id,omitempty"`
	RoomName       string     `json:"room_name,omitempty"`
	ExamDate       *time.Time `json:"exam_date,omitempty"`
	StartTime      string     `json:"start_time,omitempty"`
	EndTime        string     `json:"end_time,omitempty"`
}

// ScoreInfo is a fully resolved score: subject, exam, and a value within
// [min_score, max_score]. Partial score matches never surface.
type ScoreInfo struct {
	ExamScoreID string  `json:"exam_score_id"`
	ExamID      string  `json:"exam_id"`
	ExamName    string  `json:"exam_name"`
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	MinScore    float64 `json:"min_score"`
	IsFinal     bool    `json:"is_final"`
}

// ScoreReviewInfo describes a score review request.
type ScoreReviewInfo struct {
	ReviewID       string     `json:"review_id"`
	ExamScoreID    string     `json:"exam_score_id"`
	SubjectName    string     `json:"subject_name"`
	OriginalScore  float64    `json:"original_score"`
	ReviewedScore  *float64   `json:"reviewed_score,omitempty"`
	Status         string     `json:"status"`
	RequestDate    *time.Time `json:"request_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

// ExamsInfo groups a candidate's exam participation records.
type ExamsInfo struct {
	Exams     []ExamInfo         `json:"exams"`
	Schedules []ExamScheduleInfo `json:"schedules"`
	Scores    []ScoreInfo        `json:"scores"`
	Reviews   []ScoreReviewInfo  `json:"reviews"`
}

// CertificateInfo describes an earned certificate.
type CertificateInfo struct {
	CertificateID       string     `json:"certificate_id"`
	CertificateName     string     `json:"certificate_name"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	IssuingOrganization string     `json:"issuing_organization,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	CertificateCode     string     `json:"certificate_code,omitempty"`
}

// CredentialInfo describes a supporting credential document.
type CredentialInfo struct {
	CredentialID        string     `json:"credential_id"`
	Title               string     `json:"title"`
	CredentialType      string     `json:"credential_type"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	VerificationStatus  string     `json:"verification_status,omitempty"`
}

// AwardInfo describes an award earned by the candidate.
type AwardInfo struct {
	AwardID             string     `json:"award_id"`
	AwardName           string     `json:"award_name"`
	AwardLevel          string     `json:"award_level"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	Description         string     `json:"description,omitempty"`
}

// AchievementInfo describes a recorded achievement.
type AchievementInfo struct {
	AchievementID       string     `json:"achievement_id"`
	AchievementName     string     `json:"achievement_name"`
	AchievementType     string     `json:"achievement_type"`
	Description         string     `json:"description,omitempty"`
	DateAchieved        *time.Time `json:"date_achieved,omitempty"`
	IssuingOrganization string     `json:"issuing_organization,omitempty"`
}

// RecognitionInfo describes an official recognition.
type RecognitionInfo struct {
	RecognitionID       string     `json:"recognition_id"`
	RecognitionType     string     `json:"recognition_type"`
	Description         string     `json:"description,omitempty"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	IssuingOrganization string     `json:"issuing_organization,omitempty"`
}

// AchievementsInfo groups the five achievement-category record lists.
type AchievementsInfo struct {
	Certificates []CertificateInfo `json:"certificates"`
	Credentials  []CredentialInfo  `json:"credentials"`
	Awards       []AwardInfo       `json:"awards"`
	Achievements []AchievementInfo `json:"achievements"`
	Recognitions []RecognitionInfo `json:"recognitions"`
}

// CandidateDetailedInfo is the composite profile. Category fields are nil
// when their include flag was off; callers distinguish "not requested" from
// "requested but empty".
type CandidateDetailedInfo struct {
	BasicInfo        CandidateBasicInfo `json:"basic_info"`
	EducationInfo    *EducationInfo     `json:"education_info,omitempty"`
	ExamsInfo        *ExamsInfo         `json:"exams_info,omitempty"`
	AchievementsInfo *AchievementsInfo  `json:"achievements_info,omitempty"`
}

// SearchResult is one page of candidate matches. Total counts the full
// filtered set of distinct candidates, not the page length.
type SearchResult struct {
	Candidates []CandidateBasicInfo `json:"candidates"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
}
