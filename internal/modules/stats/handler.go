package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equiprent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(manager *gin.RouterGroup, admin *gin.RouterGroup) {
	manager.GET("/manager/stats", h.ManagerStats)
	admin.GET("/admin/stats", h.AdminStats)
}

func (h *Handler) ManagerStats(c *gin.Context) {
	s, err := h.service.ManagerStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) AdminStats(c *gin.Context) {
	s, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, s)
}
