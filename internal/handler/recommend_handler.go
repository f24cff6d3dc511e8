package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/service"
	"github.com/kaa44111/Location-Recommendation-System/pkg/response"
)

// RecommendHandler handles HTTP requests for the recommendation operations
type RecommendHandler struct {
	svc *service.RecommendService
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(svc *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// GetUnvisited handles GET /api/v1/recommendations/unvisited
func (h *RecommendHandler) GetUnvisited(c *gin.Context) {
	userID := c.Query("userId")
	category := c.Query("category")
	if userID == "" || category == "" {
		response.BadRequest(c, "userId and category parameters are required")
		return
	}

	topK, err := strconv.Atoi(c.DefaultQuery("topK", "10"))
	if err != nil || topK < 1 {
		response.BadRequest(c, "Invalid topK parameter")
		return
	}

	recs, err := h.svc.RecommendUnvisited(userID, category, topK)
	if err != nil {
		respondError(c, err)
		return
	}

	// An empty slice is a legitimate result: the candidate pool was empty.
	response.Success(c, recs)
}

// GetSimilarUsers handles GET /api/v1/users/:id/similar
func (h *RecommendHandler) GetSimilarUsers(c *gin.Context) {
	userID := c.Param("id")

	topN, err := strconv.Atoi(c.DefaultQuery("topN", "10"))
	if err != nil || topN < 1 {
		response.BadRequest(c, "Invalid topN parameter")
		return
	}

	neighbors, err := h.svc.TopSimilarUsers(userID, topN)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, neighbors)
}

// MeetingPlaceRequest represents the body of a meeting place request
type MeetingPlaceRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
	K       int      `json:"k"`
	Seed    *int64   `json:"seed"`
}

// PostMeetingPlace handles POST /api/v1/recommendations/meeting-place
func (h *RecommendHandler) PostMeetingPlace(c *gin.Context) {
	var req MeetingPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.K == 0 {
		req.K = 1
	}

	place, err := h.svc.RecommendMeetingPlace(req.UserIDs, req.K, req.Seed)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, place)
}

// respondError maps domain errors to HTTP status codes. Unknown identifiers
// are 404s carrying the offending id, never disguised as empty results.
func respondError(c *gin.Context, err error) {
	var userErr *models.UserNotFoundError
	var categoryErr *models.CategoryNotFoundError
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &userErr), errors.As(err, &categoryErr):
		response.NotFound(c, err.Error())
	case errors.As(err, &validationErr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
