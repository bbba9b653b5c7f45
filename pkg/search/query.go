package search

import (
	"fmt"
	"strings"

	"github.com/candigraph/candigraph/pkg/graph"
)

// The search query is compiled from the supplied criteria instead of binding
// every parameter into one static statement: unsupplied fields contribute no
// clause at all, which keeps the WHERE tree flat and the plan cacheable per
// criteria shape.

// containsClause renders a containment predicate for one property, lowering
// both sides unless the search is case sensitive.
func containsClause(prop, param string, caseSensitive bool) string {
	if caseSensitive {
		return fmt.Sprintf("%s CONTAINS $%s", prop, param)
	}
	return fmt.Sprintf("toLower(%s) CONTAINS toLower($%s)", prop, param)
}

// candidateClauses builds the WHERE predicates applied directly to the
// Candidate node, and their parameters.
func candidateClauses(c Criteria) ([]string, map[string]any) {
	clauses := []string{}
	params := map[string]any{}

	addContains := func(prop, name string, value *string) {
		if !supplied(value) {
			return
		}
		clauses = append(clauses, containsClause(prop, name, c.CaseSensitive))
		params[name] = *value
	}

	addContains("c.candidate_id", "candidate_id", c.CandidateID)
	addContains("c.id_number", "id_number", c.IDNumber)
	addContains("c.full_name", "full_name", c.FullName)
	addContains("c.phone_number", "phone_number", c.PhoneNumber)
	addContains("c.email", "email", c.Email)

	if c.BirthDate != nil {
		// Dates match exactly, never by containment.
		clauses = append(clauses, "c.birth_date = date($birth_date)")
		params["birth_date"] = c.BirthDate.Format("2006-01-02")
	}

	if supplied(c.Address) {
		// Heterogeneous source data stores the address under any of three
		// property names; a hit on any counts.
		parts := []string{
			containsClause("coalesce(c.address, '')", "address", c.CaseSensitive),
			containsClause("coalesce(c.primary_address, '')", "address", c.CaseSensitive),
			containsClause("coalesce(c.secondary_address, '')", "address", c.CaseSensitive),
		}
		clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
		params["address"] = *c.Address
	}

	return clauses, params
}

// rankExpression renders the specificity ORDER BY key: a candidate_id match
// ranks before an id_number match, which ranks before a full_name match.
// Only supplied fields contribute arms; with none, ordering falls back to
// full_name alone.
func rankExpression(c Criteria) string {
	arms := []string{}
	if supplied(c.CandidateID) {
		arms = append(arms, "WHEN "+containsClause("c.candidate_id", "candidate_id", c.CaseSensitive)+" THEN 0")
	}
	if supplied(c.IDNumber) {
		arms = append(arms, "WHEN "+containsClause("c.id_number", "id_number", c.CaseSensitive)+" THEN 1")
	}
	if supplied(c.FullName) {
		arms = append(arms, "WHEN "+containsClause("c.full_name", "full_name", c.CaseSensitive)+" THEN 2")
	}
	if len(arms) == 0 {
		return ""
	}
	return "CASE " + strings.Join(arms, " ") + " ELSE 3 END"
}

// buildSearchQuery compiles the full candidate search statement. The matched
// set is deduplicated and counted before pagination so a candidate linked to
// several matching edges still yields one row, and total reflects the
// distinct filtered set.
func buildSearchQuery(c Criteria, skip, limit int) (string, map[string]any) {
	clauses, params := candidateClauses(c)

	var b strings.Builder
	b.WriteString("MATCH (c:" + graph.LabelCandidate + ")\n")
	if len(clauses) > 0 {
		b.WriteString("WHERE ")
		b.WriteString(strings.Join(clauses, "\n  AND "))
		b.WriteString("\n")
	}

	// Exam and school traversals are appended only when their fields were
	// requested; an unrelated candidate with no exam edges must not be
	// excluded by an absent filter.
	withParts := []string{"c"}
	gates := []string{}

	if c.hasExamFilter() {
		examClauses := []string{}
		if supplied(c.RegistrationNumber) {
			examClauses = append(examClauses, containsClause("ae.registration_number", "registration_number", c.CaseSensitive))
			params["registration_number"] = *c.RegistrationNumber
		}
		if supplied(c.ExamID) {
			examClauses = append(examClauses, containsClause("e.exam_id", "exam_id", c.CaseSensitive))
			params["exam_id"] = *c.ExamID
		}
		b.WriteString(fmt.Sprintf("OPTIONAL MATCH (c)-[ae:%s]->(e:%s)\n", graph.RelAttendsExam, graph.LabelExam))
		b.WriteString("WHERE " + strings.Join(examClauses, " AND ") + "\n")
		withParts = append(withParts, "count(DISTINCT e) AS examMatches")
		gates = append(gates, "examMatches > 0")
	}

	if c.hasSchoolFilter() {
		b.WriteString(fmt.Sprintf("OPTIONAL MATCH (c)-[:%s]->(s:%s)\n", graph.RelStudiesAt, graph.LabelSchool))
		b.WriteString("WHERE " + containsClause("s.school_id", "school_id", c.CaseSensitive) + "\n")
		params["school_id"] = *c.SchoolID
		withParts = append(withParts, "count(DISTINCT s) AS schoolMatches")
		gates = append(gates, "schoolMatches > 0")
	}

	if len(gates) > 0 {
		b.WriteString("WITH " + strings.Join(withParts, ", ") + "\n")
		b.WriteString("WHERE " + strings.Join(gates, " AND ") + "\n")
	}

	b.WriteString("WITH collect(DISTINCT c) AS matched\n")
	b.WriteString("WITH matched, size(matched) AS total\n")
	b.WriteString("UNWIND matched AS c\n")
	b.WriteString("WITH c, total\n")

	if rank := rankExpression(c); rank != "" {
		b.WriteString("ORDER BY " + rank + ", c.full_name\n")
	} else {
		b.WriteString("ORDER BY c.full_name\n")
	}

	b.WriteString("SKIP $skip LIMIT $limit\n")
	b.WriteString("RETURN c, total")

	params["skip"] = skip
	params["limit"] = limit

	return b.String(), params
}

// getCandidateByIDQuery is the single exact-match lookup.
const getCandidateByIDQuery = `
MATCH (c:Candidate {candidate_id: $candidate_id})
RETURN c`

// educationInfoQuery traverses the three education relationships from one
// candidate. Every traversal is optional: a candidate missing a category
// yields an all-null placeholder entry, filtered out by its primary key.
const educationInfoQuery = `
MATCH (c:Candidate {candidate_id: $candidate_id})
OPTIONAL MATCH (c)-[rs:STUDIES_AT]->(s:School)
OPTIONAL MATCH (c)-[rm:STUDIES_MAJOR]->(m:Major)
OPTIONAL MATCH (c)-[rd:HOLDS_DEGREE]->(d:Degree)
RETURN
  collect(DISTINCT {
    school_id: s.school_id,
    school_name: s.school_name,
    start_year: rs.start_year,
    end_year: rs.end_year,
    education_level: rs.education_level,
    academic_performance: rs.academic_performance,
    additional_info: rs.additional_info
  }) AS schools,
  collect(DISTINCT {
    major_id: m.major_id,
    major_name: m.major_name,
    school_id: rm.school_id,
    school_name: rm.school_name,
    start_year: rm.start_year,
    end_year: rm.end_year
  }) AS majors,
  collect(DISTINCT {
    degree_id: d.degree_id,
    degree_name: d.degree_name,
    issue_date: d.issue_date,
    issuing_organization: d.issuing_organization,
    major_id: d.major_id,
    major_name: d.major_name,
    school_id: d.school_id,
    school_name: d.school_name
  }) AS degrees`

// examsInfoQuery traverses exam participation. The score pattern requires
// subject and exam linkage to resolve and the value to sit inside
// [min_score, max_score] (defaults 0 and 10); partial score matches collapse
// to null placeholders. is_final is derived from the status, not stored.
const examsInfoQuery = `
MATCH (c:Candidate {candidate_id: $candidate_id})
OPTIONAL MATCH (c)-[re:ATTENDS_EXAM]->(e:Exam)
OPTIONAL MATCH (c)-[rsch:HAS_EXAM_SCHEDULE]->(sch:ExamSchedule)
OPTIONAL MATCH (c)-[:RECEIVES_SCORE]->(score:ExamScore)-[:FOR_SUBJECT]->(sub:Subject),
               (score)-[:IN_EXAM]->(se:Exam)
WHERE score.exam_score_id IS NOT NULL
  AND sub.subject_id IS NOT NULL AND sub.subject_name IS NOT NULL
  AND se.exam_id IS NOT NULL AND se.exam_name IS NOT NULL
  AND score.score IS NOT NULL
  AND score.score >= coalesce(score.min_score, 0.0)
  AND score.score <= coalesce(score.max_score, 10.0)
OPTIONAL MATCH (c)-[:REQUESTS_REVIEW]->(review:ScoreReview)
RETURN
  collect(DISTINCT {
    exam_id: e.exam_id,
    exam_name: e.exam_name,
    registration_number: re.registration_number,
    registration_date: re.registration_date,
    status: re.status
  }) AS exams,
  collect(DISTINCT {
    exam_schedule_id: sch.exam_schedule_id,
    exam_id: sch.exam_id,
    exam_name: sch.exam_name,
    subject_id: sch.subject_id,
    subject_name: sch.subject_name,
    room_id: rsch.room_id,
    room_name: rsch.room_name,
    exam_date: sch.exam_date,
    start_time: sch.start_time,
    end_time: sch.end_time
  }) AS schedules,
  collect(DISTINCT {
    exam_score_id: score.exam_score_id,
    exam_id: se.exam_id,
    exam_name: se.exam_name,
    subject_id: sub.subject_id,
    subject_name: sub.subject_name,
    score: score.score,
    max_score: coalesce(score.max_score, 10.0),
    min_score: coalesce(score.min_score, 0.0),
    is_final: coalesce(score.status, '') = 'FINAL'
  }) AS scores,
  collect(DISTINCT {
    review_id: review.review_id,
    exam_score_id: review.exam_score_id,
    subject_name: review.subject_name,
    original_score: review.original_score,
    reviewed_score: review.reviewed_score,
    status: review.status,
    request_date: review.request_date,
    completion_date: review.completion_date
  }) AS reviews`

// achievementsInfoQuery traverses the five achievement-category
// relationships, each independently optional.
const achievementsInfoQuery = `
MATCH (c:Candidate {candidate_id: $candidate_id})
OPTIONAL MATCH (c)-[:EARNS_CERTIFICATE]->(cert:Certificate)
OPTIONAL MATCH (c)-[:PROVIDES_CREDENTIAL]->(cred:Credential)
OPTIONAL MATCH (c)-[:EARNS_AWARD]->(award:Award)
OPTIONAL MATCH (c)-[:ACHIEVES]->(ach:Achievement)
OPTIONAL MATCH (c)-[:RECEIVES_RECOGNITION]->(rec:Recognition)
RETURN
  collect(DISTINCT {
    certificate_id: cert.certificate_id,
    certificate_name: cert.certificate_name,
    issue_date: cert.issue_date,
    issuing_organization: cert.issuing_organization,
    expiry_date: cert.expiry_date,
    certificate_code: cert.certificate_code
  }) AS certificates,
  collect(DISTINCT {
    credential_id: cred.credential_id,
    title: cred.title,
    credential_type: cred.credential_type,
    issuing_organization: cred.issuing_organization,
    issue_date: cred.issue_date,
    expiry_date: cred.expiry_date,
    verification_status: cred.verification_status
  }) AS credentials,
  collect(DISTINCT {
    award_id: award.award_id,
    award_name: award.award_name,
    award_level: award.award_level,
    issuing_organization: award.issuing_organization,
    issue_date: award.issue_date,
    description: award.description
  }) AS awards,
  collect(DISTINCT {
    achievement_id: ach.achievement_id,
    achievement_name: ach.achievement_name,
    achievement_type: ach.achievement_type,
    description: ach.description,
    date_achieved: ach.date_achieved,
    issuing_organization: ach.issuing_organization
  }) AS achievements,
  collect(DISTINCT {
    recognition_id: rec.recognition_id,
    recognition_type: rec.recognition_type,
    description: rec.description,
    issue_date: rec.issue_date,
    issuing_organization: rec.issuing_organization
  }) AS recognitions`
