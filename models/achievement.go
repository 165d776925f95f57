package models

import "time"

// Achievement is created once per (user, title) pair and never mutated;
// unlock state is fixed at creation time.
type Achievement struct {
	ID          string `json:"id" bson:"id"`
	UserID      string `json:"user_id" bson:"user_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	Points      int    `json:"points" bson:"points"`
	Unlocked    bool   `json:"unlocked" bson:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty" bson:"unlocked_at,omitempty"`
}

func NewAchievement(userID, title, description, icon string, points int, newID func() string, now func() time.Time) *Achievement {
	return &Achievement{
		ID:          newID(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Icon:        icon,
		Points:      points,
		Unlocked:    true,
		UnlockedAt:  ISOTime(now()),
	}
}
