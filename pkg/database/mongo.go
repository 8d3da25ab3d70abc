package database

import (
	"context"
	"fmt"

	"referral-service/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo wraps the client and the application database handle
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// InitDB connects to MongoDB, verifies the connection and prepares indexes
func InitDB(config utils.MongoConfig) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxPoolSize)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(config.Database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), config.Timeout)
	defer indexCancel()

	if err := createIndexes(indexCtx, db); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return &Mongo{client: client, db: db}, nil
}

// createIndexes builds lookup indexes on the users collection. Idempotent.
// The email and referral_code indexes are deliberately non-unique: uniqueness
// is checked by lookup-before-insert in the service, not by the store.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "referral_code", Value: 1}}},
	}

	if _, err := db.Collection("users").Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	return nil
}
