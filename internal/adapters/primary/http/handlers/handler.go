package handlers

import (
	"github.com/gin-gonic/gin"

	"autopredict-web/internal/core/services"
)

type Handler struct {
	formSvc      *services.FormService
	dashboardSvc *services.DashboardService
	resultsSvc   *services.ResultsService
}

func New(
	formSvc *services.FormService,
	dashboardSvc *services.DashboardService,
	resultsSvc *services.ResultsService,
) *Handler {
	return &Handler{
		formSvc:      formSvc,
		dashboardSvc: dashboardSvc,
		resultsSvc:   resultsSvc,
	}
}

// RegisterRoutes mounts the HTML pages.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Home)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/predictor", h.PredictorForm)
	r.POST("/predictor", h.SubmitPrediction)
	r.GET("/results", h.Results)
}

// RegisterAPIRoutes mounts the JSON mirror of the pages.
func (h *Handler) RegisterAPIRoutes(r *gin.RouterGroup) {
	r.GET("/form", h.GetForm)
	r.POST("/predictions", h.CreatePrediction)
	r.GET("/results/:id", h.GetResult)
	r.GET("/dashboard", h.GetDashboard)
}
