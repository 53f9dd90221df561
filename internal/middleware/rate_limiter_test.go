package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() { gin.SetMode(gin.TestMode) }

func pedirDesde(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRegistroRateLimiter_CortaEnElLimite(t *testing.T) {
	r := gin.New()
	r.POST("/", RegistroRateLimiter(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, pedirDesde(r, "10.1.1.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, pedirDesde(r, "10.1.1.1"))

	// Another IP has its own window.
	assert.Equal(t, http.StatusOK, pedirDesde(r, "10.1.1.2"))
}

func TestRateLimiter_VentanaExpiraYReinicia(t *testing.T) {
	r := gin.New()
	r.POST("/", RateLimiter(2, 50*time.Millisecond), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, pedirDesde(r, "10.2.2.2"))
	assert.Equal(t, http.StatusOK, pedirDesde(r, "10.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, pedirDesde(r, "10.2.2.2"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, pedirDesde(r, "10.2.2.2"))
}
