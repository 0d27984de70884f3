package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/adapters/primary/http/dto"
	"autopredict-web/internal/core/domain"
	"autopredict-web/internal/core/services"
)

// ============================================================================
// JSON Mirror
// ============================================================================

func (h *Handler) GetForm(c *gin.Context) {
	view := h.formSvc.Open(c.Request.Context())
	if view.State == services.FormLoadFailed {
		c.JSON(http.StatusServiceUnavailable, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) CreatePrediction(c *gin.Context) {
	var req dto.CreatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.formSvc.Submit(c.Request.Context(), req.Token, req.ToFormFields())
	if err != nil {
		if abandoned(c) {
			return
		}
		log.WithError(err).Error("create prediction failed")
		mapDomainError(c, err)
		return
	}

	c.Header("Location", "/api/v1/results/"+id.String())
	c.JSON(http.StatusCreated, dto.ToCreatePredictionResponse(id))
}

func (h *Handler) GetResult(c *gin.Context) {
	view := h.resultsSvc.Consume(c.Request.Context(), c.Param("id"))
	c.Header("Cache-Control", "no-store")
	if view.Empty {
		mapDomainError(c, domain.ErrHandoffNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	view := h.dashboardSvc.Load(c.Request.Context())
	if view.State == services.DashboardFailed {
		c.JSON(http.StatusServiceUnavailable, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

