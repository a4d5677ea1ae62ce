package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DocSlot/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func run(body string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", handler)
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBind(t *testing.T) {
	handler := func(c *gin.Context) {
		var in models.LoginInput
		if !bind(c, &in) {
			return
		}
		c.Status(http.StatusNoContent)
	}

	assert.Equal(t, http.StatusNoContent, run(`{"email":"a@x.com","password":"password1"}`, handler).Code)

	w := run(`{"email":"a@x.com"}`, handler)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"password":"is required"`)

	w = run(`{"email":`, handler)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindOptional(t *testing.T) {
	handler := func(c *gin.Context) {
		var in models.BookSlotInput
		if !bindOptional(c, &in) {
			return
		}
		c.JSON(http.StatusOK, in)
	}

	assert.Equal(t, http.StatusOK, run(``, handler).Code)
	assert.Equal(t, http.StatusOK, run(`{"day":"Monday"}`, handler).Code)
	assert.Equal(t, http.StatusBadRequest, run(`{"day":5}`, handler).Code)
}
