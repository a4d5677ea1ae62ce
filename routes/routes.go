package routes

import (
	"net/http"

	"DocSlot/controllers"
	"DocSlot/metrics"
	"DocSlot/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, ctl *controllers.Controller, m *metrics.Metrics) {
	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	//public
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//each group guards its own private routes
	ctl.Users(r)
	ctl.Doctor(r)
	ctl.Booking(r)
	ctl.Profile(r)
}
