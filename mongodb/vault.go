package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"finaura/api/models"
)

func (s *Store) CreateVaultLog(ctx context.Context, log *models.VaultAccessLog) error {
	_, err := s.collection(VaultLogsCollection).InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("error creating vault log: %w", err)
	}
	return nil
}

func (s *Store) GetVaultLogsByUserID(ctx context.Context, userID string) ([]models.VaultAccessLog, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.collection(VaultLogsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching vault logs: %w", err)
	}
	return decodeAll[models.VaultAccessLog](ctx, cursor)
}
