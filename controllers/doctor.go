package controllers

import (
	"net/http"

	"DocSlot/middleware"
	"DocSlot/models"
	"DocSlot/services"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Doctor(router *gin.Engine) {
	auth := middleware.Authenticate(ctl.Verifier)
	validID := middleware.ValidateObjectID("id")

	doctor := router.Group("/api/doctors")
	doctor.POST("", auth, middleware.AdminOnly(), ctl.CreateDoctor)
	doctor.GET("", ctl.FetchAllDoctors)
	doctor.GET("/search/:specialty", ctl.SearchDoctors)
	doctor.GET("/:id", validID, ctl.FetchDoctor)
	doctor.PUT("/:id", validID, auth, middleware.AdminOnly(), ctl.UpdateDoctor)
	doctor.DELETE("/:id", validID, auth, middleware.AdminOnly(), ctl.DeleteDoctor)
}

/*
* Bind JSON
* And pass to the service with the admin as creator
 */
func (ctl *Controller) CreateDoctor(c *gin.Context) {
	var in models.DoctorInput
	if !bind(c, &in) {
		return
	}
	doctor, err := ctl.Doctors.Create(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": services.DOCTOR_ADDED, "doctor": doctor})
}

func (ctl *Controller) FetchAllDoctors(c *gin.Context) {
	list, err := ctl.Doctors.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *Controller) FetchDoctor(c *gin.Context) {
	doctor, err := ctl.Doctors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

/*
* Get id from params
* Bind only the fields which need to be updated
 */
func (ctl *Controller) UpdateDoctor(c *gin.Context) {
	var upd models.DoctorUpdate
	if !bind(c, &upd) {
		return
	}
	doctor, err := ctl.Doctors.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.DOCTOR_UPDATED, "updatedDoctor": doctor})
}

func (ctl *Controller) DeleteDoctor(c *gin.Context) {
	if err := ctl.Doctors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.DOCTOR_DELETED})
}

func (ctl *Controller) SearchDoctors(c *gin.Context) {
	list, err := ctl.Doctors.SearchBySpecialty(c.Request.Context(), c.Param("specialty"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
