package controllers

import (
	"net/http"

	"DocSlot/middleware"
	"DocSlot/models"
	"DocSlot/services"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Users(router *gin.Engine) {
	users := router.Group("/api/users")
	users.POST("/register", ctl.Register)
	users.POST("/login", middleware.LoginRateLimit(ctl.LoginLimiter), ctl.Login)
	users.POST("/forgot-password", ctl.ForgotPassword)
	users.POST("/verify-otp", ctl.VerifyOTP)
	users.POST("/reset-password", ctl.ResetPassword)
	users.POST("/change-password", middleware.Authenticate(ctl.Verifier), ctl.ChangePassword)
}

/*
* Bind and validate the register fields
* Pass to the service
 */
func (ctl *Controller) Register(c *gin.Context) {
	var in models.RegisterInput
	if !bind(c, &in) {
		return
	}
	if err := ctl.Auth.Register(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": services.USER_REGISTERED})
}

func (ctl *Controller) Login(c *gin.Context) {
	var in models.LoginInput
	if !bind(c, &in) {
		return
	}
	res, err := ctl.Auth.Login(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

/*
* Bind the email
* The service stores the OTP and mails it
 */
func (ctl *Controller) ForgotPassword(c *gin.Context) {
	var in models.ForgotPasswordInput
	if !bind(c, &in) {
		return
	}
	if err := ctl.OTP.Request(c.Request.Context(), in.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.OTP_SENT})
}

func (ctl *Controller) VerifyOTP(c *gin.Context) {
	var in models.VerifyOTPInput
	if !bind(c, &in) {
		return
	}
	if err := ctl.OTP.Verify(c.Request.Context(), in.Email, string(in.OTP)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.OTP_VERIFIED})
}

func (ctl *Controller) ResetPassword(c *gin.Context) {
	var in models.ResetPasswordInput
	if !bind(c, &in) {
		return
	}
	if err := ctl.OTP.Reset(c.Request.Context(), in.Email, in.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.PASSWORD_RESET})
}

/*
* Bind the old and new passwords
* The caller comes from the token, not the body
 */
func (ctl *Controller) ChangePassword(c *gin.Context) {
	var in models.ChangePasswordInput
	if !bind(c, &in) {
		return
	}
	if err := ctl.Auth.ChangePassword(c.Request.Context(), caller(c), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.PASSWORD_UPDATED})
}
