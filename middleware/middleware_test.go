package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"DocSlot/apperrors"
	"DocSlot/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims *token.Claims
	err    error
}

func (f fakeVerifier) Verify(context.Context, string) (*token.Claims, error) {
	return f.claims, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func ok(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) }

func TestAuthenticate(t *testing.T) {
	user := fakeVerifier{claims: &token.Claims{UserID: "u1"}}

	t.Run("missing header", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", Authenticate(user), ok)
		w := do(r, http.MethodGet, "/x", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.NO_TOKEN_PROVIDED, message(t, w))
	})

	t.Run("garbled header", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", Authenticate(user), ok)
		w := do(r, http.MethodGet, "/x", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale token", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", Authenticate(fakeVerifier{err: apperrors.ErrStaleToken}), ok)
		w := do(r, http.MethodGet, "/x", "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.STALE_TOKEN, message(t, w))
	})

	t.Run("valid token sets caller", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", Authenticate(user), func(c *gin.Context) {
			p, found := PrincipalFrom(c)
			require.True(t, found)
			assert.Equal(t, "u1", p.UserID)
			assert.False(t, p.IsAdmin)
			ok(c)
		})
		w := do(r, http.MethodGet, "/x", "Bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCapabilities(t *testing.T) {
	admin := fakeVerifier{claims: &token.Claims{UserID: "a1", IsAdmin: true}}
	user := fakeVerifier{claims: &token.Claims{UserID: "u1"}}

	tests := []struct {
		name   string
		v      Verifier
		guard  gin.HandlerFunc
		path   string
		status int
		msg    string
	}{
		{"admin only lets admin in", admin, AdminOnly(), "/r/u1", http.StatusOK, "ok"},
		{"admin only blocks user", user, AdminOnly(), "/r/u1", http.StatusForbidden, apperrors.ADMIN_ONLY},
		{"self only matches id", user, SelfOnly("id"), "/r/u1", http.StatusOK, "ok"},
		{"self only blocks other id", user, SelfOnly("id"), "/r/u2", http.StatusForbidden, apperrors.USER_MISMATCH},
		{"self only blocks admin", admin, SelfOnly("id"), "/r/u1", http.StatusForbidden, apperrors.USER_MISMATCH},
		{"self or admin as admin", admin, SelfOrAdmin("id"), "/r/u2", http.StatusOK, "ok"},
		{"self or admin as other", user, SelfOrAdmin("id"), "/r/u2", http.StatusForbidden, apperrors.ADMIN_OR_USER_MISMATCH},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/r/:id", Authenticate(tt.v), tt.guard, ok)
			w := do(r, http.MethodGet, tt.path, "Bearer abc")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, message(t, w))
		})
	}
}

func TestRequireWithoutAuthenticate(t *testing.T) {
	r := gin.New()
	r.GET("/x", AdminOnly(), ok)
	w := do(r, http.MethodGet, "/x", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateObjectID(t *testing.T) {
	r := gin.New()
	r.GET("/d/:id", ValidateObjectID("id"), ok)

	w := do(r, http.MethodGet, "/d/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.INVALID_ID, message(t, w))

	w = do(r, http.MethodGet, "/d/507f1f77bcf86cd799439011", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWriteError(t *testing.T) {
	t.Run("unknown error is hidden", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) { WriteError(c, errors.New("mongo exploded")) })
		w := do(r, http.MethodGet, "/x", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apperrors.SOMETHING_WENT_WRONG, message(t, w))
	})

	t.Run("field errors are included", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			e := apperrors.Validation("Invalid input")
			e.Fields = map[string]string{"email": "email is required"}
			WriteError(c, e)
		})
		w := do(r, http.MethodGet, "/x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "email is required", body.Errors["email"])
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString(REQUEST_ID))
		ok(c)
	})

	w := do(r, http.MethodGet, "/x", "")
	assert.Len(t, w.Header().Get(REQUEST_ID_HEADER), 36)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(REQUEST_ID_HEADER))
}
