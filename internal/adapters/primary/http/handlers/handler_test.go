package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autopredict-web/internal/adapters/primary/http/dto"
	"autopredict-web/internal/adapters/primary/http/views"
	"autopredict-web/internal/adapters/secondary/handoff"
	"autopredict-web/internal/config"
	"autopredict-web/internal/core/domain"
	"autopredict-web/internal/core/services"
	"autopredict-web/internal/testutil"
)

func setupRouter() (*testutil.MockPredictorAPI, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	api := new(testutil.MockPredictorAPI)
	carrier := handoff.NewMemoryStore(&config.HandoffConfig{TTL: time.Minute})

	h := New(
		services.NewFormService(api, carrier),
		services.NewDashboardService(api, 12),
		services.NewResultsService(carrier, nil),
	)

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	h.RegisterRoutes(r)
	h.RegisterAPIRoutes(r.Group("/api/v1"))

	return api, r
}

func toyotaForm(token string) url.Values {
	f := testutil.ToyotaFields()
	return url.Values{
		"token":        {token},
		"brand":        {f.Brand},
		"year":         {f.Year},
		"fuel":         {f.Fuel},
		"transmission": {f.Transmission},
		"location":     {f.Location},
		"subcategory":  {f.Subcategory},
	}
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/predictor", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Page Tests
// ============================================================================

func TestHome(t *testing.T) {
	_, r := setupRouter()

	w := get(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bienvenido a")
	assert.Contains(t, w.Body.String(), `href="/predictor"`)
}

func TestPredictorForm_RendersOptions(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchFormOptions", mock.Anything).Return(testutil.SampleOptions(), nil)

	w := get(r, "/predictor")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="token"`)
	assert.Contains(t, body, `<option value="Hyundai">Hyundai</option>`)
	assert.Contains(t, body, `<option value="2018">2018</option>`)
}

func TestPredictorForm_OptionsUnavailable(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchFormOptions", mock.Anything).Return(nil, &domain.NetworkError{Op: "fetch form options", Err: errors.New("refused")})

	w := get(r, "/predictor")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "No se pudieron cargar las opciones")
	assert.NotContains(t, w.Body.String(), "<form")
}

func TestSubmitPrediction_RedirectsThenResultsOnce(t *testing.T) {
	api, r := setupRouter()
	api.On("SubmitPrediction", mock.Anything, testutil.ToyotaRequest()).Return(testutil.ToyotaResult(), nil)

	w := postForm(r, toyotaForm("form-1"))

	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/results?h="), location)

	first := get(r, location)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "no-store", first.Header().Get("Cache-Control"))
	body := first.Body.String()
	assert.Contains(t, body, "$12,500")
	assert.Contains(t, body, "44.0%")
	assert.Contains(t, body, "±$8,951")
	assert.Contains(t, body, "Autos Similares en el Mercado")

	second := get(r, location)
	assert.Contains(t, second.Body.String(), "No hay datos de predicción disponibles")
}

func TestSubmitPrediction_MissingFieldReRenders(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchFormOptions", mock.Anything).Return(testutil.SampleOptions(), nil)

	form := toyotaForm("form-1")
	form.Set("fuel", "")
	w := postForm(r, form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tipo de Combustible")
	assert.Contains(t, w.Body.String(), `<option value="Toyota" selected>Toyota</option>`)
	api.AssertNotCalled(t, "SubmitPrediction", mock.Anything, mock.Anything)
}

func TestSubmitPrediction_BackendFailureAlerts(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchFormOptions", mock.Anything).Return(testutil.SampleOptions(), nil)
	api.On("SubmitPrediction", mock.Anything, mock.Anything).Return(nil, &domain.ServerError{Op: "submit prediction", StatusCode: 500})

	w := postForm(r, toyotaForm("form-1"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Error al realizar la predicción")
	assert.Contains(t, w.Body.String(), `value="form-1"`)
}

func TestSubmitPrediction_BackendDownKeepsForm(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchFormOptions", mock.Anything).Return(nil, &domain.NetworkError{Op: "fetch form options", Err: errors.New("refused")})
	api.On("SubmitPrediction", mock.Anything, mock.Anything).Return(nil, &domain.NetworkError{Op: "submit prediction", Err: errors.New("refused")})

	w := postForm(r, toyotaForm("form-1"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Error al realizar la predicción")
	assert.NotContains(t, body, "No se pudieron cargar las opciones")
	assert.Contains(t, body, "<form")
	assert.Contains(t, body, `<option value="Toyota" selected>Toyota</option>`)
	assert.Contains(t, body, `value="form-1"`)
}

func TestResults_WithoutHandoff(t *testing.T) {
	_, r := setupRouter()

	for _, path := range []string{"/results", "/results?h=nope", "/results?h=6f1c1d2e-0000-4000-8000-000000000000"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "Debes completar el formulario de predicción primero.", path)
	}
}

func TestDashboard_Loaded(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchDashboardStats", mock.Anything).Return(&domain.DashboardStats{TotalCars: 15234, ModelR2: 0.44}, nil)

	w := get(r, "/dashboard")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "15,234")
	assert.Contains(t, w.Body.String(), "No hay autos disponibles para mostrar")
}

func TestDashboard_Failed(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchDashboardStats", mock.Anything).Return(nil, &domain.ServerError{StatusCode: 500})

	w := get(r, "/dashboard")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "No se pudieron cargar las estadísticas")
	assert.NotContains(t, w.Body.String(), "Total Vehículos")
}

// ============================================================================
// JSON API Tests
// ============================================================================

func TestAPI_CreatePredictionAndFetchResult(t *testing.T) {
	api, r := setupRouter()
	api.On("SubmitPrediction", mock.Anything, testutil.ToyotaRequest()).Return(testutil.ToyotaResult(), nil)

	body := `{"token":"api-1","brand":"Toyota","year":2018,"fuel":"Gasolina","transmission":"Automática","location":"Lima","subcategory":"Sedán"}`
	req, _ := http.NewRequest("POST", "/api/v1/predictions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.CreatePredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, created.ResultsURL, w.Header().Get("Location"))

	res := get(r, created.ResultsURL)
	require.Equal(t, http.StatusOK, res.Code)
	var view services.ResultsView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &view))
	assert.Equal(t, "$12,500", view.PriceText)
	assert.Len(t, view.Cards, 3)

	gone := get(r, created.ResultsURL)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestAPI_CreatePrediction_Validation(t *testing.T) {
	api, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/v1/predictions", bytes.NewBufferString(`{"token":"api-1","brand":"Toyota"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"year", "fuel", "transmission", "location", "subcategory"}, resp.Fields)
	api.AssertNotCalled(t, "SubmitPrediction", mock.Anything, mock.Anything)
}

func TestAPI_CreatePrediction_NetworkError(t *testing.T) {
	api, r := setupRouter()
	api.On("SubmitPrediction", mock.Anything, mock.Anything).Return(nil, &domain.NetworkError{Op: "submit prediction", Err: errors.New("dial tcp: refused")})

	body := `{"token":"api-1","brand":"Toyota","year":"2018","fuel":"Gasolina","transmission":"Automática","location":"Lima","subcategory":"Sedán"}`
	req, _ := http.NewRequest("POST", "/api/v1/predictions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestAPI_GetDashboard_Failed(t *testing.T) {
	api, r := setupRouter()
	api.On("FetchDashboardStats", mock.Anything).Return(nil, &domain.NetworkError{Err: errors.New("timeout")})

	w := get(r, "/api/v1/dashboard")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var view services.DashboardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, services.DashboardFailed, view.State)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&domain.ValidationError{Missing: []string{"brand"}}, http.StatusBadRequest},
		{domain.ErrInvalidFormToken, http.StatusBadRequest},
		{domain.ErrHandoffNotFound, http.StatusNotFound},
		{domain.ErrSubmissionInProgress, http.StatusConflict},
		{&domain.ServerError{StatusCode: 500}, http.StatusBadGateway},
		{&domain.NetworkError{Err: errors.New("x")}, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), tt.err.Error())
	}
}
