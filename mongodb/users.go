package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"finaura/api/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.UserProfile) error {
	_, err := s.collection(UsersCollection).InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetUser returns nil, nil when no user exists with the given ID.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	filter := bson.M{"id": userID}

	var user models.UserProfile
	err := s.collection(UsersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &user, nil
}

func (s *Store) SetUserScore(ctx context.Context, userID string, score float64) error {
	_, err := s.collection(UsersCollection).UpdateOne(
		ctx,
		bson.M{"id": userID},
		bson.M{"$set": bson.M{"finaura_score": score}},
	)
	if err != nil {
		return fmt.Errorf("error updating user score: %w", err)
	}
	return nil
}

// IncrementUserStats bumps the upload counter and running transaction sum
// after a bill is persisted.
func (s *Store) IncrementUserStats(ctx context.Context, userID string, amount float64) error {
	_, err := s.collection(UsersCollection).UpdateOne(
		ctx,
		bson.M{"id": userID},
		bson.M{"$inc": bson.M{"total_bills": 1, "total_transactions": amount}},
	)
	if err != nil {
		return fmt.Errorf("error updating user stats: %w", err)
	}
	return nil
}
