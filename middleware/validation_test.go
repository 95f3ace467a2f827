package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMaxRequestSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(MaxRequestSize(1024))
	router.POST("/test", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// Under the cap.
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(strings.Repeat("a", 500)))
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	// Over the cap: reading the body fails.
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(strings.Repeat("a", 2000)))
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w2.Code)
}

func TestValidateContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ValidateContentType("application/json"))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// POST with the expected content type.
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/test", bytes.NewBufferString("{}"))
	req1.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	// POST with the wrong content type.
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/test", bytes.NewBufferString("<xml/>"))
	req2.Header.Set("Content-Type", "application/xml")
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	// GET skips validation.
	w3 := httptest.NewRecorder()
	req3, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusOK, w3.Code)
}
