package search

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestContainsClause(t *testing.T) {
	assert.Equal(t,
		"toLower(c.full_name) CONTAINS toLower($full_name)",
		containsClause("c.full_name", "full_name", false))
	assert.Equal(t,
		"c.full_name CONTAINS $full_name",
		containsClause("c.full_name", "full_name", true))
}

func TestCandidateClauses(t *testing.T) {
	birth := time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)
	c := Criteria{
		CandidateID: strPtr("CAND-001"),
		FullName:    strPtr("nguyen"),
		BirthDate:   &birth,
		Address:     strPtr("hanoi"),
	}

	clauses, params := candidateClauses(c)

	require.Len(t, clauses, 4)
	assert.Contains(t, clauses[0], "c.candidate_id")
	assert.Contains(t, clauses, "c.birth_date = date($birth_date)")
	assert.Equal(t, "CAND-001", params["candidate_id"])
	assert.Equal(t, "1999-04-12", params["birth_date"])

	// The address predicate matches any of the three stored properties.
	joined := strings.Join(clauses, " ")
	assert.Contains(t, joined, "coalesce(c.address, '')")
	assert.Contains(t, joined, "coalesce(c.primary_address, '')")
	assert.Contains(t, joined, "coalesce(c.secondary_address, '')")
}

func TestCandidateClausesIgnoresUnsupplied(t *testing.T) {
	clauses, params := candidateClauses(Criteria{
		CandidateID: strPtr("CAND-001"),
		FullName:    strPtr(""),
	})

	require.Len(t, clauses, 1)
	assert.NotContains(t, params, "full_name")
	assert.NotContains(t, params, "email")
}

func TestRankExpression(t *testing.T) {
	t.Run("supplied fields contribute arms in specificity order", func(t *testing.T) {
		rank := rankExpression(Criteria{
			CandidateID: strPtr("CAND-001"),
			IDNumber:    strPtr("0123"),
			FullName:    strPtr("nguyen"),
		})

		idx0 := strings.Index(rank, "THEN 0")
		idx1 := strings.Index(rank, "THEN 1")
		idx2 := strings.Index(rank, "THEN 2")
		require.True(t, idx0 >= 0 && idx1 >= 0 && idx2 >= 0)
		assert.True(t, idx0 < idx1 && idx1 < idx2)
		assert.True(t, strings.HasSuffix(rank, "ELSE 3 END"))
	})

	t.Run("only supplied fields appear", func(t *testing.T) {
		rank := rankExpression(Criteria{IDNumber: strPtr("0123")})
		assert.Contains(t, rank, "THEN 1")
		assert.NotContains(t, rank, "THEN 0")
		assert.NotContains(t, rank, "THEN 2")
	})

	t.Run("empty without rankable fields", func(t *testing.T) {
		assert.Equal(t, "", rankExpression(Criteria{Email: strPtr("a@b.c")}))
	})
}

func TestBuildSearchQuery(t *testing.T) {
	c := Criteria{
		CandidateID: strPtr("CAND-001"),
		ExamID:      strPtr("EXAM-9"),
		SchoolID:    strPtr("SCH-3"),
	}

	query, params := buildSearchQuery(c, 20, 10)

	assert.Contains(t, query, "MATCH (c:Candidate)")
	assert.Contains(t, query, "OPTIONAL MATCH (c)-[ae:ATTENDS_EXAM]->(e:Exam)")
	assert.Contains(t, query, "OPTIONAL MATCH (c)-[:STUDIES_AT]->(s:School)")
	assert.Contains(t, query, "count(DISTINCT e) AS examMatches")
	assert.Contains(t, query, "count(DISTINCT s) AS schoolMatches")
	assert.Contains(t, query, "examMatches > 0 AND schoolMatches > 0")

	// Dedup and count happen before pagination.
	collectIdx := strings.Index(query, "WITH collect(DISTINCT c) AS matched")
	skipIdx := strings.Index(query, "SKIP $skip LIMIT $limit")
	require.True(t, collectIdx >= 0 && skipIdx >= 0)
	assert.Less(t, collectIdx, skipIdx)
	assert.True(t, strings.HasSuffix(query, "RETURN c, total"))

	assert.Equal(t, 20, params["skip"])
	assert.Equal(t, 10, params["limit"])
	assert.Equal(t, "EXAM-9", params["exam_id"])
	assert.Equal(t, "SCH-3", params["school_id"])
}

func TestBuildSearchQueryOmitsUnrequestedTraversals(t *testing.T) {
	query, params := buildSearchQuery(Criteria{IDNumber: strPtr("0123")}, 0, 10)

	assert.NotContains(t, query, "ATTENDS_EXAM")
	assert.NotContains(t, query, "STUDIES_AT")
	assert.NotContains(t, params, "exam_id")
	assert.NotContains(t, params, "school_id")
	assert.Contains(t, query, "ORDER BY CASE")
}

func TestBuildSearchQueryCaseSensitive(t *testing.T) {
	query, _ := buildSearchQuery(Criteria{
		IDNumber:      strPtr("0123"),
		CaseSensitive: true,
	}, 0, 10)

	assert.Contains(t, query, "c.id_number CONTAINS $id_number")
	assert.NotContains(t, query, "toLower")
}

func TestExamsInfoQueryScoreValidity(t *testing.T) {
	// A score only counts when it resolves to a subject and an exam and its
	// value sits inside [min_score, max_score].
	assert.Contains(t, examsInfoQuery, "score.score >= coalesce(score.min_score, 0.0)")
	assert.Contains(t, examsInfoQuery, "score.score <= coalesce(score.max_score, 10.0)")
	assert.Contains(t, examsInfoQuery, "sub.subject_id IS NOT NULL")
	assert.Contains(t, examsInfoQuery, "se.exam_id IS NOT NULL")
	assert.Contains(t, examsInfoQuery, "coalesce(score.status, '') = 'FINAL'")
}
