package search

import (
	"errors"
	"time"
)

// ErrMissingIdentifier is returned when a search supplies neither a candidate
// ID nor a national ID number. Searching by name or address alone is rejected
// to prevent ambiguous identity matches.
var ErrMissingIdentifier = errors.New("search requires a candidate_id or id_number")

// Pagination bounds used when no configured limits override them.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageLimits bounds pagination, normally populated from configuration.
// Zero values fall back to the package defaults.
type PageLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// clamp normalizes pagination inputs: 1-based page, page size bounded to
// [1, max].
func (l PageLimits) clamp(page, pageSize int) (int, int) {
	def := l.DefaultPageSize
	if def <= 0 {
		def = DefaultPageSize
	}
	max := l.MaxPageSize
	if max <= 0 {
		max = MaxPageSize
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	if pageSize > max {
		pageSize = max
	}
	return page, pageSize
}

// Criteria holds the optional candidate search fields. Nil fields impose no
// constraint. String fields match by containment (case toggled by
// CaseSensitive); BirthDate matches by equality.
type Criteria struct {
	CandidateID        *string
	IDNumber           *string
	FullName           *string
	BirthDate          *time.Time
	PhoneNumber        *string
	Email              *string
	Address            *string
	RegistrationNumber *string
	ExamID             *string
	SchoolID           *string
	CaseSensitive      bool
}

// HasStrongIdentifier reports whether at least one of the two strong
// identifiers (candidate ID, national ID number) is present and non-empty.
func (c Criteria) HasStrongIdentifier() bool {
	return supplied(c.CandidateID) || supplied(c.IDNumber)
}

// hasExamFilter reports whether any exam-linked field was requested.
func (c Criteria) hasExamFilter() bool {
	return supplied(c.RegistrationNumber) || supplied(c.ExamID)
}

// hasSchoolFilter reports whether the school-linked field was requested.
func (c Criteria) hasSchoolFilter() bool {
	return supplied(c.SchoolID)
}

func supplied(s *string) bool {
	return s != nil && *s != ""
}
