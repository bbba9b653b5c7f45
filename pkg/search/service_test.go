package search

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exec *fakeExecutor) *Service {
	return NewService(NewRepository(exec, testLogger(), PageLimits{}), testLogger())
}

// lookupRoute answers the single-candidate lookup that every profile
// operation starts with.
func lookupRoute(props map[string]any) fakeRoute {
	return fakeRoute{
		contains: "candidate_id: $candidate_id})\nRETURN c",
		records: []*db.Record{
			makeRecord([]string{"c"}, []any{candidateNode(props)}),
		},
	}
}

func TestServiceSearchRequiresStrongIdentifier(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newTestService(exec)

	result, err := svc.SearchCandidates(context.Background(), Criteria{
		FullName: strPtr("nguyen"),
		Email:    strPtr("a@b.c"),
	}, 1, 10)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingIdentifier)
	assert.Zero(t, exec.calls)
}

func TestServiceSearchMapsBasicInfo(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{{
			contains: "collect(DISTINCT c) AS matched",
			records: []*db.Record{
				makeRecord([]string{"c", "total"}, []any{
					candidateNode(map[string]any{
						"candidate_id": "CAND-001",
						"full_name":    "Nguyen Van An",
						"birth_date":   dbtype.Date(time.Date(2001, 9, 3, 0, 0, 0, 0, time.UTC)),
						"id_number":    "012345678901",
						// Only the legacy property is set; it must surface
						// as the primary address.
						"address": "12 Tran Phu, Ha Noi",
					}),
					int64(1),
				}),
			},
		}},
	}
	svc := newTestService(exec)

	result, err := svc.SearchCandidates(context.Background(), Criteria{
		CandidateID: strPtr("CAND-001"),
	}, 0, 0)

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)

	got := result.Candidates[0]
	assert.Equal(t, "Nguyen Van An", got.FullName)
	assert.Equal(t, "12 Tran Phu, Ha Noi", got.PrimaryAddress)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, time.Date(2001, 9, 3, 0, 0, 0, 0, time.UTC), *got.BirthDate)
	assert.Empty(t, got.Email)

	assert.Equal(t, int64(1), result.Total)
	// Out-of-range pagination inputs are normalized, not rejected.
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, DefaultPageSize, result.PageSize)
}

func TestServiceGetCandidateInfoNotFound(t *testing.T) {
	svc := newTestService(&fakeExecutor{})

	assert.Nil(t, svc.GetCandidateInfo(context.Background(), "CAND-404", true, true, true))
	assert.Nil(t, svc.GetEducationInfo(context.Background(), "CAND-404"))
	assert.Nil(t, svc.GetExamsInfo(context.Background(), "CAND-404"))
	assert.Nil(t, svc.GetAchievementsInfo(context.Background(), "CAND-404"))
}

func TestServiceGetCandidateInfoIncludeFlags(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{
			lookupRoute(map[string]any{"candidate_id": "CAND-001", "full_name": "An"}),
			{
				contains: "STUDIES_AT",
				records: []*db.Record{
					makeRecord([]string{"schools", "majors", "degrees"}, []any{
						[]any{map[string]any{"school_id": "SCH-1", "school_name": "THPT A"}},
						[]any{},
						[]any{},
					}),
				},
			},
		},
	}
	svc := newTestService(exec)

	info := svc.GetCandidateInfo(context.Background(), "CAND-001", true, false, false)

	require.NotNil(t, info)
	assert.Equal(t, "CAND-001", info.BasicInfo.CandidateID)
	require.NotNil(t, info.EducationInfo)
	require.Len(t, info.EducationInfo.Schools, 1)
	assert.Nil(t, info.ExamsInfo)
	assert.Nil(t, info.AchievementsInfo)
}

func TestServiceEducationValidityFilter(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{
			lookupRoute(map[string]any{"candidate_id": "CAND-001"}),
			{
				contains: "STUDIES_AT",
				records: []*db.Record{
					makeRecord([]string{"schools", "majors", "degrees"}, []any{
						[]any{
							map[string]any{
								"school_id":   "SCH-1",
								"school_name": "THPT A",
								"start_year":  int64(2016),
							},
							// Has a key but no name; incomplete records
							// never surface.
							map[string]any{"school_id": "SCH-2"},
						},
						[]any{},
						[]any{map[string]any{"degree_id": "DEG-1", "degree_name": "Cu nhan"}},
					}),
				},
			},
		},
	}
	svc := newTestService(exec)

	info := svc.GetEducationInfo(context.Background(), "CAND-001")

	require.NotNil(t, info)
	require.Len(t, info.Schools, 1)
	assert.Equal(t, "SCH-1", info.Schools[0].SchoolID)
	require.NotNil(t, info.Schools[0].StartYear)
	assert.Equal(t, int64(2016), *info.Schools[0].StartYear)
	assert.Nil(t, info.Schools[0].EndYear)
	require.Len(t, info.Degrees, 1)
	assert.Empty(t, info.Majors)
}

func TestServiceScoreMapping(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{
			lookupRoute(map[string]any{"candidate_id": "CAND-001"}),
			{
				contains: "RECEIVES_SCORE",
				records: []*db.Record{
					makeRecord([]string{"exams", "schedules", "scores", "reviews"}, []any{
						[]any{},
						[]any{},
						[]any{
							map[string]any{
								"exam_score_id": "SCORE-1",
								"exam_id":       "EXAM-1",
								"exam_name":     "THPT QG 2024",
								"subject_id":    "SUB-1",
								"subject_name":  "Toan",
								"score":         8.25,
								"max_score":     10.0,
								"min_score":     0.0,
								"is_final":      true,
							},
							// Missing the score value entirely; dropped.
							map[string]any{
								"exam_score_id": "SCORE-2",
								"exam_id":       "EXAM-1",
								"exam_name":     "THPT QG 2024",
								"subject_id":    "SUB-2",
								"subject_name":  "Van",
							},
						},
						[]any{
							map[string]any{
								"review_id":      "REV-1",
								"exam_score_id":  "SCORE-1",
								"subject_name":   "Toan",
								"original_score": 8.25,
								"reviewed_score": nil,
								"status":         "PENDING",
								"request_date":   "2024-07-20",
							},
						},
					}),
				},
			},
		},
	}
	svc := newTestService(exec)

	info := svc.GetExamsInfo(context.Background(), "CAND-001")

	require.NotNil(t, info)
	require.Len(t, info.Scores, 1)
	score := info.Scores[0]
	assert.Equal(t, 8.25, score.Score)
	assert.Equal(t, 10.0, score.MaxScore)
	assert.True(t, score.IsFinal)

	require.Len(t, info.Reviews, 1)
	assert.Nil(t, info.Reviews[0].ReviewedScore)
	require.NotNil(t, info.Reviews[0].RequestDate)
	assert.Equal(t, time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC), *info.Reviews[0].RequestDate)
}

func TestServiceAchievementValidityFilter(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{
			lookupRoute(map[string]any{"candidate_id": "CAND-001"}),
			{
				contains: "EARNS_CERTIFICATE",
				records: []*db.Record{
					makeRecord(
						[]string{"certificates", "credentials", "awards", "achievements", "recognitions"},
						[]any{
							[]any{map[string]any{"certificate_id": "CERT-1", "certificate_name": "IELTS 7.0"}},
							[]any{
								// No issue date; credentials require one.
								map[string]any{
									"credential_id":        "CRED-1",
									"title":                "Chung chi tin hoc",
									"credential_type":      "CERTIFICATE",
									"issuing_organization": "Bo GD",
								},
							},
							[]any{},
							[]any{},
							[]any{map[string]any{
								"recognition_id":   "REC-1",
								"recognition_type": "MERIT",
								"issue_date":       "2023-11-05",
							}},
						},
					),
				},
			},
		},
	}
	svc := newTestService(exec)

	info := svc.GetAchievementsInfo(context.Background(), "CAND-001")

	require.NotNil(t, info)
	require.Len(t, info.Certificates, 1)
	assert.Empty(t, info.Credentials)
	require.Len(t, info.Recognitions, 1)
	assert.Equal(t, "MERIT", info.Recognitions[0].RecognitionType)
}

func TestServiceScoreRangeFilter(t *testing.T) {
	exec := &fakeExecutor{
		routes: []fakeRoute{
			lookupRoute(map[string]any{"candidate_id": "CAND-001"}),
			{
				contains: "RECEIVES_SCORE",
				records: []*db.Record{
					makeRecord([]string{"exams", "schedules", "scores", "reviews"}, []any{
						[]any{},
						[]any{},
						[]any{
							map[string]any{
								"exam_score_id": "SCORE-1",
								"exam_id":       "EXAM-1",
								"exam_name":     "THPT QG 2024",
								"subject_id":    "SUB-1",
								"subject_name":  "Toan",
								"score":         9.5,
								"max_score":     10.0,
								"min_score":     0.0,
							},
							// Value above max_score; all fields present but
							// the score is out of range.
							map[string]any{
								"exam_score_id": "SCORE-2",
								"exam_id":       "EXAM-1",
								"exam_name":     "THPT QG 2024",
								"subject_id":    "SUB-2",
								"subject_name":  "Van",
								"score":         42.0,
								"max_score":     10.0,
								"min_score":     0.0,
							},
							// Value below min_score.
							map[string]any{
								"exam_score_id": "SCORE-3",
								"exam_id":       "EXAM-1",
								"exam_name":     "THPT QG 2024",
								"subject_id":    "SUB-3",
								"subject_name":  "Anh",
								"score":         2.0,
								"min_score":     5.0,
							},
						},
						[]any{},
					}),
				},
			},
		},
	}
	svc := newTestService(exec)

	info := svc.GetExamsInfo(context.Background(), "CAND-001")

	require.NotNil(t, info)
	require.Len(t, info.Scores, 1)
	assert.Equal(t, "SCORE-1", info.Scores[0].ExamScoreID)
}
