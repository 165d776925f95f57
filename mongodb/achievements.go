package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"finaura/api/models"
)

func (s *Store) HasAchievement(ctx context.Context, userID, title string) (bool, error) {
	filter := bson.M{"user_id": userID, "title": title}

	err := s.collection(AchievementsCollection).FindOne(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("error checking achievement: %w", err)
	}
	return true, nil
}

// CreateAchievement inserts an unlock record. A duplicate-key error means
// a concurrent upload already unlocked the same title; that counts as
// success, the unique index exists exactly for this.
func (s *Store) CreateAchievement(ctx context.Context, achievement *models.Achievement) error {
	_, err := s.collection(AchievementsCollection).InsertOne(ctx, achievement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("error creating achievement: %w", err)
	}
	return nil
}

func (s *Store) GetAchievementsByUserID(ctx context.Context, userID string) ([]models.Achievement, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.collection(AchievementsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}
	return decodeAll[models.Achievement](ctx, cursor)
}
