package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/r-huijts/LibreChat/schema"
	"github.com/r-huijts/LibreChat/store"
)

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authenticate verifies the bearer token and records the requester id in
// the context. Token issuance belongs to the identity service; this server
// only verifies.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized)
		return
	}

	var claims accessClaims
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
	if err != nil || !token.Valid || claims.Subject == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized, err)
		return
	}

	c.Set("requester", claims.Subject)
	c.Set("requesterRole", claims.Role)
	c.Next()
}

// recognizeAccount loads the user document of the requester so handlers can
// read the embedded consent projection without another query.
func (s *Server) recognizeAccount(c *gin.Context) {
	requester := c.GetString("requester")

	user, err := s.mongoStore.GetUser(requester)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Set("user", user)
	c.Next()
}

// requireAdmin rejects callers without the admin role before the handler
// body runs.
func (s *Server) requireAdmin(c *gin.Context) {
	user, ok := c.MustGet("user").(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if user.Role != schema.RoleAdmin {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	c.Next()
}
