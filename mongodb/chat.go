package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"finaura/api/models"
)

func (s *Store) CreateChatMessage(ctx context.Context, message *models.ChatMessage) error {
	_, err := s.collection(ChatMessagesCollection).InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("error creating chat message: %w", err)
	}
	return nil
}

// GetChatHistory returns a session's messages oldest first. A limit of 0
// means no cap.
func (s *Store) GetChatHistory(ctx context.Context, sessionID string, limit int64) ([]models.ChatMessage, error) {
	filter := bson.M{"session_id": sessionID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := s.collection(ChatMessagesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching chat history: %w", err)
	}
	return decodeAll[models.ChatMessage](ctx, cursor)
}
