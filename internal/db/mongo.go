package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the driver client so handlers get an injected handle
// instead of a package-level singleton.
type Mongo struct {
	Client *mongo.Client
	dbName string
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Mongo{Client: client, dbName: dbName}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.Client.Database(m.dbName).Collection(name)
}

// EnsureIndexes creates the indexes the queries rely on. The unique
// email index also makes the member-email constraint real instead of
// best-effort.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Collection("members").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create member email index: %w", err)
	}

	_, err = m.Collection("members").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "expiryDate", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create member expiry index: %w", err)
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
