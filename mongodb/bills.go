package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"finaura/api/models"
)

func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) error {
	_, err := s.collection(BillsCollection).InsertOne(ctx, bill)
	if err != nil {
		return fmt.Errorf("error creating bill: %w", err)
	}
	return nil
}

func (s *Store) GetBillsByUserID(ctx context.Context, userID string) ([]models.Bill, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.collection(BillsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bills: %w", err)
	}
	return decodeAll[models.Bill](ctx, cursor)
}
