package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/r-huijts/LibreChat/modelspec"
	"github.com/r-huijts/LibreChat/schema"
	"github.com/r-huijts/LibreChat/store"
	"github.com/r-huijts/LibreChat/store/mocks"
)

var testJWTSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func testToken(t *testing.T, userID, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	signed, err := token.SignedString(testJWTSecret)
	if err != nil {
		t.Fatalf("sign test token: %s", err)
	}
	return signed
}

func newTestServer(t *testing.T) (*Server, *mocks.MockMongoStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockMongoStore(ctrl)
	server := NewServer(mockStore, modelspec.NewRegistry(nil), testJWTSecret, false)
	return server, mockStore, ctrl
}

func perform(server *Server, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func expectUser(mockStore *mocks.MockMongoStore, id, role string) {
	mockStore.EXPECT().GetUser(id).Return(&schema.User{
		ID:   id,
		Role: role,
	}, nil)
}

func TestListConsents(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().GetUserConsents("user-1", false).Return([]schema.ModelConsent{
		{ID: "c-1", UserID: "user-1", ModelName: "gpt-4-vision"},
	}, nil)

	w := perform(server, "GET", "/api/v1/consents", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gpt-4-vision")
}

func TestListConsentsIncludeRevoked(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().GetUserConsents("user-1", true).Return([]schema.ModelConsent{}, nil)

	w := perform(server, "GET", "/api/v1/consents?include_revoked=true", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptConsent(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().
		AcceptModelConsent("user-1", store.AcceptConsentParams{
			ModelName:  "gpt-4-vision",
			ModelLabel: "GPT-4 Vision",
		}).
		Return(&schema.ModelConsent{
			ID:        "c-1",
			UserID:    "user-1",
			ModelName: "gpt-4-vision",
		}, nil)

	w := perform(server, "POST", "/api/v1/consents", testToken(t, "user-1", schema.RoleUser),
		`{"model_name": "gpt-4-vision", "model_label": "GPT-4 Vision"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"consent"`)
}

func TestAcceptConsentMissingModelName(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)

	w := perform(server, "POST", "/api/v1/consents", testToken(t, "user-1", schema.RoleUser),
		`{"model_label": "GPT-4 Vision"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "model_name is required")
}

func TestRevokeConsent(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().RevokeModelConsent("user-1", "gpt-4-vision").Return(true, nil)

	w := perform(server, "DELETE", "/api/v1/consents/gpt-4-vision", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "consent revoked")
}

func TestRevokeConsentNotFound(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().RevokeModelConsent("user-1", "gpt-4-vision").Return(false, nil)

	w := perform(server, "DELETE", "/api/v1/consents/gpt-4-vision", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListModelConsentsRequiresAdmin(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	// GetModelConsents must never be reached for a non-admin caller
	expectUser(mockStore, "user-1", schema.RoleUser)

	w := perform(server, "GET", "/api/v1/consents/model/gpt-4-vision", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListModelConsentsAsAdmin(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "admin-1", schema.RoleAdmin)
	mockStore.EXPECT().GetModelConsents("gpt-4-vision", false).Return([]schema.ModelConsent{
		{ID: "c-1", UserID: "user-1", ModelName: "gpt-4-vision"},
		{ID: "c-2", UserID: "user-2", ModelName: "gpt-4-vision"},
	}, nil)

	w := perform(server, "GET", "/api/v1/consents/model/gpt-4-vision", testToken(t, "admin-1", schema.RoleAdmin), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-2")
}

func TestMissingTokenUnauthorized(t *testing.T) {
	server, _, ctrl := newTestServer(t)
	defer ctrl.Finish()

	w := perform(server, "GET", "/api/v1/consents", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStorageFailureIsGeneric(t *testing.T) {
	server, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	expectUser(mockStore, "user-1", schema.RoleUser)
	mockStore.EXPECT().GetUserConsents("user-1", false).Return(nil, assert.AnError)

	w := perform(server, "GET", "/api/v1/consents", testToken(t, "user-1", schema.RoleUser), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
