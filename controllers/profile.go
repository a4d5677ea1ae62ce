package controllers

import (
	"log"
	"net/http"

	"DocSlot/apperrors"
	"DocSlot/middleware"
	"DocSlot/models"
	"DocSlot/services"

	"github.com/gin-gonic/gin"
)

const PHOTO_FIELD = "profilePhoto"

func (ctl *Controller) Profile(router *gin.Engine) {
	auth := middleware.Authenticate(ctl.Verifier)
	validID := middleware.ValidateObjectID("id")

	profile := router.Group("/api/profile")
	profile.GET("", auth, middleware.AdminOnly(), ctl.FetchAllUsers)
	profile.DELETE("/removePhoto/:id", auth, middleware.SelfOnly("id"), ctl.RemovePhoto)
	profile.POST("/photo/:id", auth, middleware.SelfOnly("id"), ctl.UploadPhoto)
	profile.GET("/:id", validID, auth, ctl.FetchUser)
	profile.PUT("/:id", validID, auth, middleware.SelfOnly("id"), ctl.UpdateUser)
	profile.DELETE("/:id", validID, auth, middleware.SelfOrAdmin("id"), ctl.DeleteUser)
}

func (ctl *Controller) FetchAllUsers(c *gin.Context) {
	list, err := ctl.Profiles.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *Controller) FetchUser(c *gin.Context) {
	user, err := ctl.Profiles.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

/*
* Bind the optional username and email
* Return only the public fields
 */
func (ctl *Controller) UpdateUser(c *gin.Context) {
	var in models.UpdateUserInput
	if !bind(c, &in) {
		return
	}
	user, err := ctl.Profiles.UpdateUser(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": services.USER_UPDATED,
		"user": gin.H{
			"_id":      user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (ctl *Controller) DeleteUser(c *gin.Context) {
	if err := ctl.Profiles.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": services.USER_DELETED})
}

/*
* Exactly one file under the profilePhoto field
* Stream it to the service
 */
func (ctl *Controller) UploadPhoto(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File[PHOTO_FIELD]) != 1 {
		fail(c, apperrors.Validation(apperrors.NO_FILE_UPLOADED))
		return
	}
	header := form.File[PHOTO_FIELD][0]
	file, err := header.Open()
	if err != nil {
		log.Println("Error while opening the uploaded file: ", err)
		fail(c, apperrors.Validation(apperrors.NO_FILE_UPLOADED))
		return
	}
	defer file.Close()

	photo, err := ctl.Profiles.UploadPhoto(c.Request.Context(), c.Param("id"), file, header.Filename)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.PHOTO_UPDATED, "profilePhoto": photo})
}

func (ctl *Controller) RemovePhoto(c *gin.Context) {
	if err := ctl.Profiles.RemovePhoto(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": services.PHOTO_REMOVED})
}
