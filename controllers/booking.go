package controllers

import (
	"net/http"

	"DocSlot/middleware"
	"DocSlot/models"
	"DocSlot/services"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Booking(router *gin.Engine) {
	booking := router.Group("/api/bookings")
	booking.Use(middleware.Authenticate(ctl.Verifier))
	booking.GET("/available/:doctorId", middleware.ValidateObjectID("doctorId"), ctl.FetchAvailability)
	booking.POST("/:doctorId", middleware.ValidateObjectID("doctorId"), ctl.BookSlot)
	booking.GET("/admin", middleware.AdminOnly(), ctl.FetchAllBookings)
	booking.GET("/user/:userId", middleware.ValidateObjectID("userId"), middleware.SelfOrAdmin("userId"), ctl.FetchUserBookings)
	booking.GET("/doctor/:doctorId", middleware.ValidateObjectID("doctorId"), ctl.FetchDoctorBookings)
	booking.PUT("/:id", middleware.AdminOnly(), middleware.ValidateObjectID("id"), ctl.UpdateBookingStatus)
}

func (ctl *Controller) FetchAvailability(c *gin.Context) {
	avail, err := ctl.Bookings.Availability(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

/*
* Day and time are checked in the service so a blank pair
* gets the same message as a missing one
 */
func (ctl *Controller) BookSlot(c *gin.Context) {
	var in models.BookSlotInput
	if !bindOptional(c, &in) {
		return
	}
	res, err := ctl.Bookings.BookSlot(c.Request.Context(), c.Param("doctorId"), caller(c), in.Day, in.Time)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *Controller) FetchAllBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctl *Controller) FetchUserBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctl *Controller) FetchDoctorBookings(c *gin.Context) {
	bookings, err := ctl.Bookings.ListByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctl *Controller) UpdateBookingStatus(c *gin.Context) {
	var in models.UpdateBookingStatusInput
	if !bindOptional(c, &in) {
		return
	}
	booking, err := ctl.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status, in.PaymentStatus)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": services.BOOKING_UPDATED, "booking": booking})
}
