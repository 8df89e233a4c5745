package schema

import "time"

const (
	UserCollection = "users"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the account identity loaded by the authentication middleware.
// ModelConsents is a materialized view of the modelConsents collection and
// must only be mutated through the composite store operations.
type User struct {
	ID            string             `json:"id" bson:"id"`
	Username      string             `json:"username" bson:"username"`
	Role          string             `json:"role" bson:"role"`
	ModelConsents []UserModelConsent `json:"model_consents" bson:"model_consents"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ActiveConsent returns the embedded consent entry for a model name if one
// exists and has not been revoked.
func (u *User) ActiveConsent(modelName string) (UserModelConsent, bool) {
	for _, c := range u.ModelConsents {
		if c.ModelName == modelName && c.Active() {
			return c, true
		}
	}
	return UserModelConsent{}, false
}
