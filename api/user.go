package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r-huijts/LibreChat/schema"
)

// currentUser returns the requester's user document, embedded consent
// entries included. The client identity cache refreshes from this route
// after every consent mutation.
func (s *Server) currentUser(c *gin.Context) {
	user, ok := c.MustGet("user").(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
