// Package mongodb holds the document-store layer. Unlike most of the
// domain logic, everything here is thin: one collection per record type,
// insert/find/update with no transformation.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"finaura/api/logger"
)

const (
	UsersCollection        = "users"
	BillsCollection        = "bills"
	ChatMessagesCollection = "chat_messages"
	AchievementsCollection = "achievements"
	VaultLogsCollection    = "vault_logs"
)

// Store wraps the Mongo client. It is constructed once at process start
// and passed to the handlers; Close pairs with Connect at shutdown.
type Store struct {
	client *mongo.Client
	dbName string
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB",
			zap.String("uri", uri),
			zap.Error(err))
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	store := &Store{client: client, dbName: dbName}
	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Get().Info("successfully connected to MongoDB",
		zap.String("database", dbName))
	return store, nil
}

// ensureIndexes guarantees at most one achievement per (user_id, title);
// the evaluator's read-then-write pre-check alone would race under
// concurrent uploads.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.collection(AchievementsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating achievements index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB",
			zap.Error(err))
		return
	}
	logger.Get().Info("successfully disconnected from MongoDB")
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// decodeAll drains a cursor into a slice, mirroring the find pattern used
// by every list endpoint.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)

	items := []T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding document: %w", err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}
