package models

import "time"

// UserProfile is the per-user aggregate the score and achievement flows
// mutate. total_bills and total_transactions are incremented on every
// upload; finaura_score is rewritten on each score recomputation.
type UserProfile struct {
	ID                string   `json:"id" bson:"id"`
	Name              string   `json:"name" bson:"name"`
	Email             string   `json:"email" bson:"email"`
	FinauraScore      float64  `json:"finaura_score" bson:"finaura_score"`
	TotalBills        int      `json:"total_bills" bson:"total_bills"`
	TotalTransactions float64  `json:"total_transactions" bson:"total_transactions"`
	Achievements      []string `json:"achievements" bson:"achievements"`
	CreatedAt         string   `json:"created_at" bson:"created_at"`
}

func NewUserProfile(name, email string, newID func() string, now func() time.Time) *UserProfile {
	return &UserProfile{
		ID:           newID(),
		Name:         name,
		Email:        email,
		FinauraScore: 0,
		Achievements: []string{},
		CreatedAt:    ISOTime(now()),
	}
}

// ISOTime renders a timestamp the way every record in the store carries
// them: ISO-8601 in UTC.
func ISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
