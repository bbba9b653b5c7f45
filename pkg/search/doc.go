// Package search implements multi-criteria candidate search and profile
// aggregation over the candidate graph.
//
// A search must carry at least one strong identifier (candidate ID or
// national ID number); the remaining criteria narrow the match. Results are
// deduplicated, ordered by match specificity and paginated. Profile
// aggregation collects a candidate's education, exam and achievement records
// through independent optional traversals, so one missing category never
// empties the others.
//
// Query failures degrade to empty results: the repository logs and absorbs
// them, and the service layer only ever returns the strong-identifier
// precondition error.
package search
