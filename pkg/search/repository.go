package search

import (
	"context"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/candigraph/candigraph/pkg/driver"
)

// Repository builds and executes the candidate search and profile-aggregation
// queries. It is purely read-only. Query failures are logged and absorbed:
// callers see the same empty shape for "no match" and "store unreachable",
// trading silent degradation for availability.
type Repository struct {
	executor driver.GraphExecutor
	logger   *slog.Logger
	limits   PageLimits
}

// NewRepository creates a repository over the given graph executor. Zero
// limits fall back to the package defaults.
func NewRepository(executor driver.GraphExecutor, logger *slog.Logger, limits PageLimits) *Repository {
	return &Repository{
		executor: executor,
		logger:   logger,
		limits:   limits,
	}
}

// educationRows, examRows and achievementRows carry the raw per-category
// property maps before the service shapes them into typed records.
type educationRows struct {
	Schools []map[string]any
	Majors  []map[string]any
	Degrees []map[string]any
}

type examRows struct {
	Exams     []map[string]any
	Schedules []map[string]any
	Scores    []map[string]any
	Reviews   []map[string]any
}

type achievementRows struct {
	Certificates []map[string]any
	Credentials  []map[string]any
	Awards       []map[string]any
	Achievements []map[string]any
	Recognitions []map[string]any
}

// SearchCandidates executes the multi-criteria search and returns one page of
// candidate property maps plus the total count of distinct matches. Searches
// without a strong identifier return nothing.
func (r *Repository) SearchCandidates(ctx context.Context, c Criteria, page, pageSize int) ([]map[string]any, int64) {
	if !c.HasStrongIdentifier() {
		return []map[string]any{}, 0
	}

	page, pageSize = r.limits.clamp(page, pageSize)
	skip := (page - 1) * pageSize

	query, params := buildSearchQuery(c, skip, pageSize)

	records, err := r.executor.ExecuteQuery(ctx, query, params)
	if err != nil {
		r.logger.Error("candidate search query failed", "error", err)
		return []map[string]any{}, 0
	}

	candidates := make([]map[string]any, 0, len(records))
	var total int64

	for _, record := range records {
		nodeValue, found := record.Get("c")
		if !found {
			continue
		}
		node, ok := driver.AsNode(nodeValue)
		if !ok {
			continue
		}
		if total == 0 {
			if totalValue, found := record.Get("total"); found {
				if n, ok := driver.AsInt64(totalValue); ok {
					total = n
				}
			}
		}
		candidates = append(candidates, node.Props)
	}

	return candidates, total
}

// GetCandidateByID returns the raw property map of one candidate, or nil if
// no candidate carries the ID.
func (r *Repository) GetCandidateByID(ctx context.Context, candidateID string) map[string]any {
	records, err := r.executor.ExecuteQuery(ctx, getCandidateByIDQuery, map[string]any{
		"candidate_id": candidateID,
	})
	if err != nil {
		r.logger.Error("candidate lookup failed", "candidate_id", candidateID, "error", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	nodeValue, found := records[0].Get("c")
	if !found {
		return nil
	}
	node, ok := driver.AsNode(nodeValue)
	if !ok {
		return nil
	}
	return node.Props
}

// GetEducationInfo collects a candidate's schools, majors and degrees. Each
// category is an independent optional traversal; a missing category comes
// back as an empty list, never as an error.
func (r *Repository) GetEducationInfo(ctx context.Context, candidateID string) educationRows {
	empty := educationRows{
		Schools: []map[string]any{},
		Majors:  []map[string]any{},
		Degrees: []map[string]any{},
	}

	records, err := r.executor.ExecuteQuery(ctx, educationInfoQuery, map[string]any{
		"candidate_id": candidateID,
	})
	if err != nil {
		r.logger.Error("education info query failed", "candidate_id", candidateID, "error", err)
		return empty
	}
	if len(records) == 0 {
		return empty
	}

	record := records[0]
	return educationRows{
		Schools: collectRows(record, "schools", "school_id"),
		Majors:  collectRows(record, "majors", "major_id"),
		Degrees: collectRows(record, "degrees", "degree_id"),
	}
}

// GetExamsInfo collects a candidate's exams, schedules, scores and score
// reviews. Score validity (resolved subject and exam, value in range) is
// enforced inside the query; anything partial arrives as a null placeholder
// and is dropped here.
func (r *Repository) GetExamsInfo(ctx context.Context, candidateID string) examRows {
	empty := examRows{
		Exams:     []map[string]any{},
		Schedules: []map[string]any{},
		Scores:    []map[string]any{},
		Reviews:   []map[string]any{},
	}

	records, err := r.executor.ExecuteQuery(ctx, examsInfoQuery, map[string]any{
		"candidate_id": candidateID,
	})
	if err != nil {
		r.logger.Error("exams info query failed", "candidate_id", candidateID, "error", err)
		return empty
	}
	if len(records) == 0 {
		return empty
	}

	record := records[0]
	return examRows{
		Exams:     collectRows(record, "exams", "exam_id"),
		Schedules: collectRows(record, "schedules", "exam_schedule_id"),
		Scores:    collectRows(record, "scores", "exam_score_id"),
		Reviews:   collectRows(record, "reviews", "review_id"),
	}
}

// GetAchievementsInfo collects a candidate's certificates, credentials,
// awards, achievements and recognitions.
func (r *Repository) GetAchievementsInfo(ctx context.Context, candidateID string) achievementRows {
	empty := achievementRows{
		Certificates: []map[string]any{},
		Credentials:  []map[string]any{},
		Awards:       []map[string]any{},
		Achievements: []map[string]any{},
		Recognitions: []map[string]any{},
	}

	records, err := r.executor.ExecuteQuery(ctx, achievementsInfoQuery, map[string]any{
		"candidate_id": candidateID,
	})
	if err != nil {
		r.logger.Error("achievements info query failed", "candidate_id", candidateID, "error", err)
		return empty
	}
	if len(records) == 0 {
		return empty
	}

	record := records[0]
	return achievementRows{
		Certificates: collectRows(record, "certificates", "certificate_id"),
		Credentials:  collectRows(record, "credentials", "credential_id"),
		Awards:       collectRows(record, "awards", "award_id"),
		Achievements: collectRows(record, "achievements", "achievement_id"),
		Recognitions: collectRows(record, "recognitions", "recognition_id"),
	}
}

// collectRows extracts a collected list of property maps from a record,
// dropping placeholder entries whose primary key is null. Optional matches
// that found nothing produce exactly such entries.
func collectRows(record *db.Record, key, primaryKey string) []map[string]any {
	rows := []map[string]any{}

	value, found := record.Get(key)
	if !found {
		return rows
	}
	items, ok := driver.AsAnySlice(value)
	if !ok {
		return rows
	}

	for _, item := range items {
		m, ok := driver.AsMap(item)
		if !ok {
			continue
		}
		if m[primaryKey] == nil {
			continue
		}
		rows = append(rows, m)
	}
	return rows
}
