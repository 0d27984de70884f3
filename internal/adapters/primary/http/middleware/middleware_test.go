package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"autopredict-web/internal/requestid"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logging())
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, requestid.FromContext(c.Request.Context()))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest("GET", "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(requestid.Header)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String(), "id is carried on the request context")
}

func TestRequestID_Propagated(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest("GET", "/echo", nil)
	req.Header.Set(requestid.Header, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(requestid.Header))
	assert.Equal(t, "req-123", w.Body.String())
}
