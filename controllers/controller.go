package controllers

import (
	"errors"
	"io"

	"DocSlot/apperrors"
	"DocSlot/middleware"
	"DocSlot/services"

	"github.com/gin-gonic/gin"
)

// Controller holds what the handlers need. Everything is built once at start-up.
type Controller struct {
	Auth     *services.AuthService
	OTP      *services.OTPService
	Doctors  *services.DoctorService
	Bookings *services.BookingService
	Profiles *services.ProfileService

	Verifier     middleware.Verifier
	LoginLimiter middleware.Limiter
}

/*
* Bind the JSON body into input
* On failure answer 400 with one message per field
 */
func bind(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		middleware.WriteError(c, apperrors.FromBinding(err, input))
		return false
	}
	return true
}

// bindOptional accepts an empty body and leaves field checks to the service.
func bindOptional(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil && !errors.Is(err, io.EOF) {
		middleware.WriteError(c, apperrors.FromBinding(err, input))
		return false
	}
	return true
}

func fail(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// caller is only used behind Authenticate, so the principal is always set.
func caller(c *gin.Context) string {
	p, _ := middleware.PrincipalFrom(c)
	return p.UserID
}
