package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/r-huijts/LibreChat/schema"
)

var (
	ErrUserNotFound  = fmt.Errorf("user not found")
	ErrUsernameTaken = fmt.Errorf("username already taken")
)

type User interface {
	CreateUser(id, username, role string) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
}

// CreateUser registers a user document with an empty consent projection.
func (m *mongoDB) CreateUser(id, username, role string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	now := time.Now().UTC()
	user := schema.User{
		ID:            id,
		Username:      username,
		Role:          role,
		ModelConsents: []schema.UserModelConsent{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := c.InsertOne(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &user, nil
}

// GetUser loads a user document, including the embedded consent entries the
// client gate reads from.
func (m *mongoDB) GetUser(id string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
