// Package graph defines the node labels and relationship types of the
// candidate ontology as they appear in the graph store. The labels are owned
// by the write-side sync services; this package only names them so queries
// stay consistent.
package graph

// Node labels.
const (
	LabelCandidate    = "Candidate"
	LabelSchool       = "School"
	LabelMajor        = "Major"
	LabelDegree       = "Degree"
	LabelExam         = "Exam"
	LabelExamSchedule = "ExamSchedule"
	LabelExamScore    = "ExamScore"
	LabelScoreReview  = "ScoreReview"
	LabelSubject      = "Subject"
	LabelCertificate  = "Certificate"
	LabelCredential   = "Credential"
	LabelAward        = "Award"
	LabelAchievement  = "Achievement"
	LabelRecognition  = "Recognition"
)

// Relationship types. Education and exam edges carry temporal attributes
// (start_year, registration_number, ...) distinct from the node properties.
const (
	RelStudiesAt           = "STUDIES_AT"
	RelStudiesMajor        = "STUDIES_MAJOR"
	RelHoldsDegree         = "HOLDS_DEGREE"
	RelAttendsExam         = "ATTENDS_EXAM"
	RelHasExamSchedule     = "HAS_EXAM_SCHEDULE"
	RelReceivesScore       = "RECEIVES_SCORE"
	RelForSubject          = "FOR_SUBJECT"
	RelInExam              = "IN_EXAM"
	RelRequestsReview      = "REQUESTS_REVIEW"
	RelEarnsCertificate    = "EARNS_CERTIFICATE"
	RelProvidesCredential  = "PROVIDES_CREDENTIAL"
	RelEarnsAward          = "EARNS_AWARD"
	RelAchieves            = "ACHIEVES"
	RelReceivesRecognition = "RECEIVES_RECOGNITION"
)
