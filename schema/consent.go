package schema

import "time"

const (
	ModelConsentCollection = "modelConsents"
)

// ModelConsent is the authoritative consent record. There is at most one
// logical record per (user_id, model_name); accepting again overwrites the
// acceptance in place and revoking only sets revoked_at, so the record
// remains queryable for audit.
type ModelConsent struct {
	ID         string                 `json:"id" bson:"id"`
	UserID     string                 `json:"user_id" bson:"user_id"`
	ModelName  string                 `json:"model_name" bson:"model_name"`
	ModelLabel string                 `json:"model_label" bson:"model_label"`
	AcceptedAt time.Time              `json:"accepted_at" bson:"accepted_at"`
	RevokedAt  *time.Time             `json:"revoked_at" bson:"revoked_at"`
	Metadata   map[string]interface{} `json:"metadata" bson:"metadata"`
	CreatedAt  time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at" bson:"updated_at"`
}

// UserModelConsent is the denormalized projection embedded in the user
// document so that the client can read consent status from the identity it
// has already loaded, without an extra round trip.
type UserModelConsent struct {
	ModelName  string     `json:"model_name" bson:"model_name"`
	ModelLabel string     `json:"model_label" bson:"model_label"`
	AcceptedAt time.Time  `json:"accepted_at" bson:"accepted_at"`
	RevokedAt  *time.Time `json:"revoked_at" bson:"revoked_at"`
}

// Active reports whether the consent has not been revoked.
func (c UserModelConsent) Active() bool {
	return c.RevokedAt == nil
}
