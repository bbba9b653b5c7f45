package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/candigraph/candigraph/pkg/driver"
)

// Service validates search requests, delegates to the repository and shapes
// raw property maps into typed records. Like the repository it degrades to
// empty results on internal failure; the only error it ever returns is the
// strong-identifier precondition.
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

// NewService creates a search service over the given repository.
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SearchCandidates runs a multi-criteria search and returns one page of basic
// candidate records. The strong-identifier rule is re-asserted here even
// though the API layer checks it too: the service is the reusable unit and
// fails closed.
func (s *Service) SearchCandidates(ctx context.Context, c Criteria, page, pageSize int) (*SearchResult, error) {
	if !c.HasStrongIdentifier() {
		return nil, ErrMissingIdentifier
	}

	page, pageSize = s.repo.limits.clamp(page, pageSize)

	rows, total := s.repo.SearchCandidates(ctx, c, page, pageSize)

	candidates := make([]CandidateBasicInfo, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, mapBasicInfo(row))
	}

	return &SearchResult{
		Candidates: candidates,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetCandidateInfo assembles a candidate's composite profile. Categories are
// fetched only when their flag is set and stay nil otherwise; a nil return
// means the candidate does not exist.
func (s *Service) GetCandidateInfo(ctx context.Context, candidateID string, includeEducation, includeExams, includeAchievements bool) *CandidateDetailedInfo {
	props := s.repo.GetCandidateByID(ctx, candidateID)
	if props == nil {
		return nil
	}

	result := &CandidateDetailedInfo{
		BasicInfo: mapBasicInfo(props),
	}

	if includeEducation {
		education := s.mapEducation(s.repo.GetEducationInfo(ctx, candidateID))
		result.EducationInfo = &education
	}
	if includeExams {
		exams := s.mapExams(s.repo.GetExamsInfo(ctx, candidateID))
		result.ExamsInfo = &exams
	}
	if includeAchievements {
		achievements := s.mapAchievements(s.repo.GetAchievementsInfo(ctx, candidateID))
		result.AchievementsInfo = &achievements
	}

	return result
}

// GetEducationInfo returns a candidate's education records, or nil when the
// candidate does not exist. A candidate with no records gets empty lists.
func (s *Service) GetEducationInfo(ctx context.Context, candidateID string) *EducationInfo {
	if s.repo.GetCandidateByID(ctx, candidateID) == nil {
		return nil
	}
	education := s.mapEducation(s.repo.GetEducationInfo(ctx, candidateID))
	return &education
}

// GetExamsInfo returns a candidate's exam participation records, or nil when
// the candidate does not exist.
func (s *Service) GetExamsInfo(ctx context.Context, candidateID string) *ExamsInfo {
	if s.repo.GetCandidateByID(ctx, candidateID) == nil {
		return nil
	}
	exams := s.mapExams(s.repo.GetExamsInfo(ctx, candidateID))
	return &exams
}

// GetAchievementsInfo returns a candidate's achievement-category records, or
// nil when the candidate does not exist.
func (s *Service) GetAchievementsInfo(ctx context.Context, candidateID string) *AchievementsInfo {
	if s.repo.GetCandidateByID(ctx, candidateID) == nil {
		return nil
	}
	achievements := s.mapAchievements(s.repo.GetAchievementsInfo(ctx, candidateID))
	return &achievements
}

// mapBasicInfo shapes a candidate property map into the basic-info record.
// The primary address falls back to the generic address property; source
// systems disagree on which one they write.
func mapBasicInfo(props map[string]any) CandidateBasicInfo {
	primaryAddress := propString(props, "primary_address")
	if primaryAddress == "" {
		primaryAddress = propString(props, "address")
	}

	return CandidateBasicInfo{
		CandidateID:           propString(props, "candidate_id"),
		FullName:              propString(props, "full_name"),
		BirthDate:             propDate(props, "birth_date"),
		IDNumber:              propString(props, "id_number"),
		PhoneNumber:           propString(props, "phone_number"),
		Email:                 propString(props, "email"),
		PrimaryAddress:        primaryAddress,
		SecondaryAddress:      propString(props, "secondary_address"),
		IDCardImageURL:        propString(props, "id_card_image_url"),
		CandidateCardImageURL: propString(props, "candidate_card_image_url"),
	}
}

// The repository already drops placeholder rows by primary key; the
// per-field checks below are the second net. A record surfaces only when
// both layers agree it is complete.

func (s *Service) mapEducation(rows educationRows) EducationInfo {
	info := EducationInfo{
		Schools: []SchoolInfo{},
		Majors:  []MajorInfo{},
		Degrees: []DegreeInfo{},
	}

	for _, m := range rows.Schools {
		if !hasAll(m, "school_id", "school_name") {
			continue
		}
		info.Schools = append(info.Schools, SchoolInfo{
			SchoolID:            propString(m, "school_id"),
			SchoolName:          propString(m, "school_name"),
			StartYear:           propInt(m, "start_year"),
			EndYear:             propInt(m, "end_year"),
			EducationLevel:      propString(m, "education_level"),
			AcademicPerformance: propString(m, "academic_performance"),
			AdditionalInfo:      propString(m, "additional_info"),
		})
	}

	for _, m := range rows.Majors {
		if !hasAll(m, "major_id", "major_name") {
			continue
		}
		info.Majors = append(info.Majors, MajorInfo{
			MajorID:    propString(m, "major_id"),
			MajorName:  propString(m, "major_name"),
			SchoolID:   propString(m, "school_id"),
			SchoolName: propString(m, "school_name"),
			StartYear:  propInt(m, "start_year"),
			EndYear:    propInt(m, "end_year"),
		})
	}

	for _, m := range rows.Degrees {
		if !hasAll(m, "degree_id", "degree_name") {
			continue
		}
		info.Degrees = append(info.Degrees, DegreeInfo{
			DegreeID:            propString(m, "degree_id"),
			DegreeName:          propString(m, "degree_name"),
			IssueDate:           propDate(m, "issue_date"),
			IssuingOrganization: propString(m, "issuing_organization"),
			MajorID:             propString(m, "major_id"),
			MajorName:           propString(m, "major_name"),
			SchoolID:            propString(m, "school_id"),
			SchoolName:          propString(m, "school_name"),
		})
	}

	return info
}

func (s *Service) mapExams(rows examRows) ExamsInfo {
	info := ExamsInfo{
		Exams:     []ExamInfo{},
		Schedules: []ExamScheduleInfo{},
		Scores:    []ScoreInfo{},
		Reviews:   []ScoreReviewInfo{},
	}

	for _, m := range rows.Exams {
		if !hasAll(m, "exam_id", "exam_name") {
			continue
		}
		info.Exams = append(info.Exams, ExamInfo{
			ExamID:             propString(m, "exam_id"),
			ExamName:           propString(m, "exam_name"),
			RegistrationNumber: propString(m, "registration_number"),
			RegistrationDate:   propDate(m, "registration_date"),
			Status:             propString(m, "status"),
		})
	}

	for _, m := range rows.Schedules {
		if !hasAll(m, "exam_schedule_id", "exam_id", "exam_name", "subject_id", "subject_name") {
			continue
		}
		info.Schedules = append(info.Schedules, ExamScheduleInfo{
			ExamScheduleID: propString(m, "exam_schedule_id"),
			ExamID:         propString(m, "exam_id"),
			ExamName:       propString(m, "exam_name"),
			SubjectID:      propString(m, "subject_id"),
			SubjectName:    propString(m, "subject_name"),
			RoomID:         propString(m, "room_id"),
			RoomName:       propString(m, "room_name"),
			ExamDate:       propDate(m, "exam_date"),
			StartTime:      propString(m, "start_time"),
			EndTime:        propString(m, "end_time"),
		})
	}

	for _, m := range rows.Scores {
		if !hasAll(m, "exam_score_id", "exam_id", "exam_name", "subject_id", "subject_name", "score") {
			continue
		}
		score := propFloat(m, "score", 0.0)
		maxScore := propFloat(m, "max_score", 10.0)
		minScore := propFloat(m, "min_score", 0.0)
		if score < minScore || score > maxScore {
			continue
		}
		info.Scores = append(info.Scores, ScoreInfo{
			ExamScoreID: propString(m, "exam_score_id"),
			ExamID:      propString(m, "exam_id"),
			ExamName:    propString(m, "exam_name"),
			SubjectID:   propString(m, "subject_id"),
			SubjectName: propString(m, "subject_name"),
			Score:       score,
			MaxScore:    maxScore,
			MinScore:    minScore,
			IsFinal:     propBool(m, "is_final"),
		})
	}

	for _, m := range rows.Reviews {
		if !hasAll(m, "review_id", "exam_score_id", "subject_name", "original_score", "status", "request_date") {
			continue
		}
		info.Reviews = append(info.Reviews, ScoreReviewInfo{
			ReviewID:       propString(m, "review_id"),
			ExamScoreID:    propString(m, "exam_score_id"),
			SubjectName:    propString(m, "subject_name"),
			OriginalScore:  propFloat(m, "original_score", 0.0),
			ReviewedScore:  propFloatPtr(m, "reviewed_score"),
			Status:         propString(m, "status"),
			RequestDate:    propDate(m, "request_date"),
			CompletionDate: propDate(m, "completion_date"),
		})
	}

	return info
}

func (s *Service) mapAchievements(rows achievementRows) AchievementsInfo {
	info := AchievementsInfo{
		Certificates: []CertificateInfo{},
		Credentials:  []CredentialInfo{},
		Awards:       []AwardInfo{},
		Achievements: []AchievementInfo{},
		Recognitions: []RecognitionInfo{},
	}

	for _, m := range rows.Certificates {
		if !hasAll(m, "certificate_id", "certificate_name") {
			continue
		}
		info.Certificates = append(info.Certificates, CertificateInfo{
			CertificateID:       propString(m, "certificate_id"),
			CertificateName:     propString(m, "certificate_name"),
			IssueDate:           propDate(m, "issue_date"),
			IssuingOrganization: propString(m, "issuing_organization"),
			ExpiryDate:          propDate(m, "expiry_date"),
			CertificateCode:     propString(m, "certificate_code"),
		})
	}

	for _, m := range rows.Credentials {
		if !hasAll(m, "credential_id", "title", "credential_type", "issuing_organization", "issue_date") {
			continue
		}
		info.Credentials = append(info.Credentials, CredentialInfo{
			CredentialID:        propString(m, "credential_id"),
			Title:               propString(m, "title"),
			CredentialType:      propString(m, "credential_type"),
			IssuingOrganization: propString(m, "issuing_organization"),
			IssueDate:           propDate(m, "issue_date"),
			ExpiryDate:          propDate(m, "expiry_date"),
			VerificationStatus:  propString(m, "verification_status"),
		})
	}

	for _, m := range rows.Awards {
		if !hasAll(m, "award_id", "award_name", "award_level", "issuing_organization", "issue_date") {
			continue
		}
		info.Awards = append(info.Awards, AwardInfo{
			AwardID:             propString(m, "award_id"),
			AwardName:           propString(m, "award_name"),
			AwardLevel:          propString(m, "award_level"),
			IssuingOrganization: propString(m, "issuing_organization"),
			IssueDate:           propDate(m, "issue_date"),
			Description:         propString(m, "description"),
		})
	}

	for _, m := range rows.Achievements {
		if !hasAll(m, "achievement_id", "achievement_name", "achievement_type", "date_achieved") {
			continue
		}
		info.Achievements = append(info.Achievements, AchievementInfo{
			AchievementID:       propString(m, "achievement_id"),
			AchievementName:     propString(m, "achievement_name"),
			AchievementType:     propString(m, "achievement_type"),
			Description:         propString(m, "description"),
			DateAchieved:        propDate(m, "date_achieved"),
			IssuingOrganization: propString(m, "issuing_organization"),
		})
	}

	for _, m := range rows.Recognitions {
		if !hasAll(m, "recognition_id", "recognition_type", "issue_date") {
			continue
		}
		info.Recognitions = append(info.Recognitions, RecognitionInfo{
			RecognitionID:       propString(m, "recognition_id"),
			RecognitionType:     propString(m, "recognition_type"),
			Description:         propString(m, "description"),
			IssueDate:           propDate(m, "issue_date"),
			IssuingOrganization: propString(m, "issuing_organization"),
		})
	}

	return info
}

// hasAll reports whether every named key is present and non-null.
func hasAll(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if m[key] == nil {
			return false
		}
	}
	return true
}

func propString(m map[string]any, key string) string {
	s, _ := driver.AsString(m[key])
	return s
}

func propInt(m map[string]any, key string) *int64 {
	n, ok := driver.AsInt64(m[key])
	if !ok {
		return nil
	}
	return &n
}

func propFloat(m map[string]any, key string, fallback float64) float64 {
	f, ok := driver.AsFloat64(m[key])
	if !ok {
		return fallback
	}
	return f
}

func propFloatPtr(m map[string]any, key string) *float64 {
	f, ok := driver.AsFloat64(m[key])
	if !ok {
		return nil
	}
	return &f
}

func propBool(m map[string]any, key string) bool {
	b, _ := driver.AsBool(m[key])
	return b
}

func propDate(m map[string]any, key string) *time.Time {
	t, ok := driver.AsDate(m[key])
	if !ok {
		return nil
	}
	return &t
}
