package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r-huijts/LibreChat/store"
)

// listConsents returns the requester's own consent records.
func (s *Server) listConsents(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		IncludeRevoked bool `form:"include_revoked"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	consents, err := s.mongoStore.GetUserConsents(requester, params.IncludeRevoked)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consents": consents})
}

// acceptConsent records the requester's acceptance of a model. Accepting is
// set-active: calling it again for the same model overwrites the previous
// acceptance and clears any revocation.
func (s *Server) acceptConsent(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		ModelName  string                 `json:"model_name"`
		ModelLabel string                 `json:"model_label"`
		Metadata   map[string]interface{} `json:"metadata"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.ModelName == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorModelNameRequired)
		return
	}

	consent, err := s.mongoStore.AcceptModelConsent(requester, store.AcceptConsentParams{
		ModelName:  params.ModelName,
		ModelLabel: params.ModelLabel,
		Metadata:   params.Metadata,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consent": consent})
}

// revokeConsent soft-revokes the requester's active consent for a model.
// Revoking twice is not an error; the second call simply finds nothing to
// change and reports 404.
func (s *Server) revokeConsent(c *gin.Context) {
	requester := c.GetString("requester")
	modelName := c.Param("modelName")

	revoked, err := s.mongoStore.RevokeModelConsent(requester, modelName)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !revoked {
		abortWithEncoding(c, http.StatusNotFound, errorConsentNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "consent revoked"})
}

// listModelConsents is the administrative cross-user listing for one model.
func (s *Server) listModelConsents(c *gin.Context) {
	modelName := c.Param("modelName")

	var params struct {
		IncludeRevoked bool `form:"include_revoked"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	consents, err := s.mongoStore.GetModelConsents(modelName, params.IncludeRevoked)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consents": consents})
}
