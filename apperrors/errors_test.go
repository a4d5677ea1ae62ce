package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidOTP, http.StatusBadRequest},
		{ErrEmailTaken, http.StatusBadRequest},
		{ErrDoctorNotFound, http.StatusNotFound},
		{ErrStaleToken, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrTooManyLogins, http.StatusTooManyRequests},
		{Upstream("mail", errors.New("smtp down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrSlotTaken), http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrap(ErrUserNotFound, errors.New("mongo: no documents in result"))
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrTokenUserNotFound)
	assert.Contains(t, err.Error(), "no documents")
}

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func TestFromBinding(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	in := signup{Email: "nope", Password: "short"}

	appErr := FromBinding(v.Struct(in), &in)
	require.NotNil(t, appErr)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "must be a valid email", appErr.Fields["email"])
	assert.Equal(t, "must be at least 8 characters long", appErr.Fields["password"])
}
