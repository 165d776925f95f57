// Package achievements unlocks gamified achievements from a user's bill
// upload count.
package achievements

import (
	"context"
	"fmt"
	"time"

	"finaura/api/models"
)

// Rule maps an upload-count threshold to the achievement it unlocks.
type Rule struct {
	Title       string
	Description string
	Icon        string
	Points      int
	Threshold   int
}

// Rules is the fixed ascending threshold table.
var Rules = []Rule{
	{Title: "First Step", Description: "Upload your first bill", Icon: "trophy", Points: 10, Threshold: 1},
	{Title: "Getting Started", Description: "Upload 5 bills", Icon: "star", Points: 25, Threshold: 5},
	{Title: "Financial Tracker", Description: "Upload 10 bills", Icon: "medal", Points: 50, Threshold: 10},
	{Title: "Finance Master", Description: "Upload 20 bills", Icon: "crown", Points: 100, Threshold: 20},
}

// Ledger is the persistence surface the evaluator needs. HasAchievement is
// the pre-check that keeps the pass idempotent per rule; the storage layer
// additionally holds a unique (user_id, title) index so concurrent passes
// cannot double-insert.
type Ledger interface {
	HasAchievement(ctx context.Context, userID, title string) (bool, error)
	CreateAchievement(ctx context.Context, achievement *models.Achievement) error
}

// Evaluator runs the unlock pass. NewID and Now are injected so tests can
// pin identities and timestamps.
type Evaluator struct {
	Ledger Ledger
	NewID  func() string
	Now    func() time.Time
}

// Evaluate unlocks every rule whose threshold the bill count has met and
// which the user does not already hold. All qualifying rules unlock in one
// pass, not just the highest; rules never re-lock. Returns the newly
// created achievements.
func (e *Evaluator) Evaluate(ctx context.Context, userID string, billCount int) ([]models.Achievement, error) {
	var unlocked []models.Achievement
	for _, rule := range Rules {
		if billCount < rule.Threshold {
			continue
		}

		exists, err := e.Ledger.HasAchievement(ctx, userID, rule.Title)
		if err != nil {
			return unlocked, fmt.Errorf("checking achievement %q: %w", rule.Title, err)
		}
		if exists {
			continue
		}

		achievement := models.NewAchievement(userID, rule.Title, rule.Description, rule.Icon, rule.Points, e.NewID, e.Now)
		if err := e.Ledger.CreateAchievement(ctx, achievement); err != nil {
			return unlocked, fmt.Errorf("unlocking achievement %q: %w", rule.Title, err)
		}
		unlocked = append(unlocked, *achievement)
	}
	return unlocked, nil
}
