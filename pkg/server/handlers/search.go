package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candigraph/candigraph/pkg/search"
	"github.com/candigraph/candigraph/pkg/server/dto"
)

// SearchHandler serves the candidate search and profile endpoints.
type SearchHandler struct {
	service *search.Service
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *search.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// SearchCandidates handles GET and POST /api/v1/search/candidates. GET binds
// the criteria from query parameters, POST from a JSON body.
func (h *SearchHandler) SearchCandidates(c *gin.Context) {
	var req dto.CandidateSearchRequest

	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}

	criteria, err := toCriteria(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.ErrCodeInvalidRequest,
			Message: "birth_date must be formatted as YYYY-MM-DD",
		})
		return
	}

	result, err := h.service.SearchCandidates(c.Request.Context(), criteria, req.Page, req.PageSize)
	if err != nil {
		if errors.Is(err, search.ErrMissingIdentifier) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   dto.ErrCodeMissingIdentification,
				Message: "candidate_id or id_number is required",
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCandidateInfo handles GET /api/v1/search/candidates/:candidate_id.
func (h *SearchHandler) GetCandidateInfo(c *gin.Context) {
	var req dto.CandidateInfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   dto.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}

	info := h.service.GetCandidateInfo(c.Request.Context(), c.Param("candidate_id"),
		req.IncludeEducation, req.IncludeExams, req.IncludeAchievements)
	if info == nil {
		h.notFound(c)
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetEducationInfo handles GET /api/v1/search/candidates/:candidate_id/education.
func (h *SearchHandler) GetEducationInfo(c *gin.Context) {
	info := h.service.GetEducationInfo(c.Request.Context(), c.Param("candidate_id"))
	if info == nil {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetExamsInfo handles GET /api/v1/search/candidates/:candidate_id/exams.
func (h *SearchHandler) GetExamsInfo(c *gin.Context) {
	info := h.service.GetExamsInfo(c.Request.Context(), c.Param("candidate_id"))
	if info == nil {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetAchievementsInfo handles GET /api/v1/search/candidates/:candidate_id/achievements.
func (h *SearchHandler) GetAchievementsInfo(c *gin.Context) {
	info := h.service.GetAchievementsInfo(c.Request.Context(), c.Param("candidate_id"))
	if info == nil {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *SearchHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error:   dto.ErrCodeCandidateNotFound,
		Message: "no candidate with id " + c.Param("candidate_id"),
	})
}

// toCriteria converts the bound request into search criteria, treating empty
// strings as absent fields.
func toCriteria(req dto.CandidateSearchRequest) (search.Criteria, error) {
	criteria := search.Criteria{
		CandidateID:        optional(req.CandidateID),
		IDNumber:           optional(req.IDNumber),
		FullName:           optional(req.FullName),
		PhoneNumber:        optional(req.PhoneNumber),
		Email:              optional(req.Email),
		Address:            optional(req.Address),
		RegistrationNumber: optional(req.RegistrationNumber),
		ExamID:             optional(req.ExamID),
		SchoolID:           optional(req.SchoolID),
		CaseSensitive:      req.CaseSensitive,
	}

	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return search.Criteria{}, err
		}
		criteria.BirthDate = &birth
	}

	return criteria, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
