package middleware

import (
	"log"
	"net/http"

	"DocSlot/apperrors"
	"DocSlot/role"

	"github.com/gin-gonic/gin"
)

const (
	USER_ID    = "userId"
	IS_ADMIN   = "isAdmin"
	REQUEST_ID = "requestId"
)

func setPrincipal(c *gin.Context, p role.Principal) {
	c.Set(USER_ID, p.UserID)
	c.Set(IS_ADMIN, p.IsAdmin)
}

// PrincipalFrom returns the caller set by Authenticate.
func PrincipalFrom(c *gin.Context) (role.Principal, bool) {
	id := c.GetString(USER_ID)
	if id == "" {
		return role.Principal{}, false
	}
	return role.Principal{UserID: id, IsAdmin: c.GetBool(IS_ADMIN)}, true
}

/*
* App errors go out with their own status and message
* Anything else is logged and hidden behind a 500
 */
func WriteError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		log.Println("request", c.GetString(REQUEST_ID), c.Request.Method, c.FullPath(), "failed:", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": apperrors.SOMETHING_WENT_WRONG})
		return
	}
	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		log.Println("request", c.GetString(REQUEST_ID), c.Request.Method, c.FullPath(), "failed:", err)
	}
	body := gin.H{"message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	c.AbortWithStatusJSON(status, body)
}
