package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/core/domain"
	"autopredict-web/internal/core/services"
)

type feature struct {
	Title       string
	Description string
}

var homeFeatures = []feature{
	{"Predicción Inteligente", "Modelo Random Forest optimizado con GridSearchCV y feature engineering"},
	{"API REST Moderna", "Backend robusto con Django REST Framework para integraciones"},
	{"Interfaz Moderna", "Páginas renderizadas en el servidor, rápidas y sin dependencias en el navegador"},
	{"Alta Precisión", "Error promedio de ±$8,951 USD con R² score de 0.44"},
}

var homeStack = []string{"Python", "Django", "scikit-learn", "Go", "Gin", "PostgreSQL"}

func page(title, active string, view any) gin.H {
	return gin.H{
		"Title":  title,
		"Active": active,
		"View":   view,
	}
}

func (h *Handler) Home(c *gin.Context) {
	data := page("Inicio", "home", nil)
	data["Features"] = homeFeatures
	data["Stack"] = homeStack
	c.HTML(http.StatusOK, "home.tmpl", data)
}

func (h *Handler) Dashboard(c *gin.Context) {
	view := h.dashboardSvc.Load(c.Request.Context())
	if abandoned(c) {
		return
	}

	status := http.StatusOK
	if view.State == services.DashboardFailed {
		status = http.StatusServiceUnavailable
	}
	c.HTML(status, "dashboard.tmpl", page("Dashboard", "dashboard", view))
}

func (h *Handler) PredictorForm(c *gin.Context) {
	view := h.formSvc.Open(c.Request.Context())
	if abandoned(c) {
		return
	}

	status := http.StatusOK
	if view.State == services.FormLoadFailed {
		status = http.StatusServiceUnavailable
	}
	c.HTML(status, "predictor.tmpl", page("Predictor de Precios", "predictor", view))
}

func (h *Handler) SubmitPrediction(c *gin.Context) {
	var fields domain.FormFields
	if err := c.ShouldBind(&fields); err != nil {
		log.WithError(err).Warn("bind prediction form failed")
	}
	token := c.PostForm("token")

	id, err := h.formSvc.Submit(c.Request.Context(), token, fields)
	if err != nil {
		if errors.Is(err, context.Canceled) || abandoned(c) {
			log.WithField("token", token).Info("prediction discarded after client left")
			return
		}
		log.WithError(err).Error("submit prediction failed")

		view := h.formSvc.Restore(c.Request.Context(), token, fields, err)
		c.HTML(statusForError(err), "predictor.tmpl", page("Predictor de Precios", "predictor", view))
		return
	}

	c.Redirect(http.StatusSeeOther, "/results?h="+id.String())
}

func (h *Handler) Results(c *gin.Context) {
	view := h.resultsSvc.Consume(c.Request.Context(), c.Query("h"))

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "results.tmpl", page("Resultado de Predicción", "predictor", view))
}

// abandoned reports whether the client went away while the page was loading.
func abandoned(c *gin.Context) bool {
	return c.Request.Context().Err() != nil
}
