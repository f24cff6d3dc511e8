package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kaa44111/Location-Recommendation-System/internal/service"
	"github.com/kaa44111/Location-Recommendation-System/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset introspection
type DatasetHandler struct {
	svc *service.RecommendService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(svc *service.RecommendService) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// GetStats handles GET /api/v1/dataset/stats
func (h *DatasetHandler) GetStats(c *gin.Context) {
	response.Success(c, h.svc.Stats())
}

// GetProfile handles GET /api/v1/users/:id/profile
func (h *DatasetHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.Profile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, p)
}
