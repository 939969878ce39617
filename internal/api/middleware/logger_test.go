package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	router := gin.New()
	router.Use(Logger())
	router.GET("/anonymous", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/authed", func(c *gin.Context) {
		c.Set(userCtx, userID)
		c.Status(http.StatusOK)
	})

	buf := captureLog(t)

	req, _ := http.NewRequest(http.MethodGet, "/anonymous?page=2", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "[GET] /anonymous?page=2")
	assert.Contains(t, buf.String(), "user=- 204")

	buf.Reset()
	req, _ = http.NewRequest(http.MethodGet, "/authed", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "user="+userID.String()+" 200")
}
