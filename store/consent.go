package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-huijts/LibreChat/schema"
)

type AcceptConsentParams struct {
	ModelName  string
	ModelLabel string
	Metadata   map[string]interface{}
}

type Consent interface {
	GetUserConsents(userID string, includeRevoked bool) ([]schema.ModelConsent, error)
	AcceptModelConsent(userID string, params AcceptConsentParams) (*schema.ModelConsent, error)
	RevokeModelConsent(userID, modelName string) (bool, error)
	GetModelConsents(modelName string, includeRevoked bool) ([]schema.ModelConsent, error)
	HasModelConsent(userID, modelName string) (bool, error)
}

// GetUserConsents lists consent records of a user ordered by accepted_at
// descending. Revoked records are excluded unless includeRevoked is set.
func (m *mongoDB) GetUserConsents(userID string, includeRevoked bool) ([]schema.ModelConsent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ModelConsentCollection)

	query := bson.M{"user_id": userID}
	if !includeRevoked {
		query["revoked_at"] = nil
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"accepted_at": -1}))
	if err != nil {
		return nil, err
	}

	consents := make([]schema.ModelConsent, 0)
	if err := cursor.All(ctx, &consents); err != nil {
		return nil, err
	}

	return consents, nil
}

// AcceptModelConsent records that a user accepted a model. It is an
// idempotent set-active upsert keyed by (user_id, model_name): accepted_at,
// label and metadata are overwritten with the latest values and revoked_at
// is cleared, whatever the prior state. The upsert is atomic at the storage
// layer, so concurrent accepts for the same key resolve to one record.
// The embedded copy on the user document is synchronized remove-then-insert.
func (m *mongoDB) AcceptModelConsent(userID string, params AcceptConsentParams) (*schema.ModelConsent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	now := time.Now().UTC()

	filter := bson.M{
		"user_id":    userID,
		"model_name": params.ModelName,
	}
	update := bson.M{
		"$set": bson.M{
			"model_label": params.ModelLabel,
			"metadata":    params.Metadata,
			"accepted_at": now,
			"revoked_at":  nil,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.New().String(),
			"user_id":    userID,
			"model_name": params.ModelName,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var consent schema.ModelConsent
	if err := db.Collection(schema.ModelConsentCollection).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&consent); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"user_id":    userID,
			"model_name": params.ModelName,
			"error":      err,
		}).Error("accept model consent")
		return nil, err
	}

	users := db.Collection(schema.UserCollection)

	// remove-then-insert keeps the embedded array free of duplicate
	// model_name entries
	if _, err := users.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$pull": bson.M{"model_consents": bson.M{"model_name": params.ModelName}},
	}); err != nil {
		return nil, err
	}

	entry := schema.UserModelConsent{
		ModelName:  consent.ModelName,
		ModelLabel: consent.ModelLabel,
		AcceptedAt: consent.AcceptedAt,
	}
	if _, err := users.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$push": bson.M{"model_consents": entry},
		"$set":  bson.M{"updated_at": now},
	}); err != nil {
		return nil, err
	}

	return &consent, nil
}

// RevokeModelConsent soft-revokes an active consent. It returns false when
// no active record exists, so a second consecutive revoke is a no-op rather
// than an error. The matching embedded entry is updated in place and kept,
// so the history stays visible on the user document.
func (m *mongoDB) RevokeModelConsent(userID, modelName string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	now := time.Now().UTC()

	result, err := db.Collection(schema.ModelConsentCollection).UpdateOne(ctx, bson.M{
		"user_id":    userID,
		"model_name": modelName,
		"revoked_at": nil,
	}, bson.M{
		"$set": bson.M{
			"revoked_at": now,
			"updated_at": now,
		},
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"user_id":    userID,
			"model_name": modelName,
			"error":      err,
		}).Error("revoke model consent")
		return false, err
	}

	if result.ModifiedCount == 0 {
		return false, nil
	}

	if _, err := db.Collection(schema.UserCollection).UpdateOne(ctx, bson.M{
		"id":                        userID,
		"model_consents.model_name": modelName,
	}, bson.M{
		"$set": bson.M{
			"model_consents.$.revoked_at": now,
			"updated_at":                  now,
		},
	}); err != nil {
		return false, err
	}

	return true, nil
}

// GetModelConsents lists consents of every user for one model. It backs the
// administrative audit route.
func (m *mongoDB) GetModelConsents(modelName string, includeRevoked bool) ([]schema.ModelConsent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ModelConsentCollection)

	query := bson.M{"model_name": modelName}
	if !includeRevoked {
		query["revoked_at"] = nil
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"accepted_at": -1}))
	if err != nil {
		return nil, err
	}

	consents := make([]schema.ModelConsent, 0)
	if err := cursor.All(ctx, &consents); err != nil {
		return nil, err
	}

	return consents, nil
}

// HasModelConsent reports whether a user holds an active consent for a
// model. Nothing in the chat pipeline calls this today; it is the hook for
// a server-side enforcement point.
func (m *mongoDB) HasModelConsent(userID, modelName string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ModelConsentCollection)

	count, err := c.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"model_name": modelName,
		"revoked_at": nil,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
