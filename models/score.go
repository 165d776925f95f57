package models

// ScoreFactor explains one contribution to the FinAura Score. Value may
// be a count or a formatted amount depending on the factor.
type ScoreFactor struct {
	Name   string  `json:"name" bson:"name"`
	Value  any     `json:"value" bson:"value"`
	Impact string  `json:"impact" bson:"impact"`
	Score  float64 `json:"score,omitempty" bson:"score,omitempty"`
}

// ScoreExplanation is the score endpoint's response body. Ephemeral: only
// the Score field is persisted, onto the user record.
type ScoreExplanation struct {
	Score           float64       `json:"score" bson:"score"`
	Factors         []ScoreFactor `json:"factors" bson:"factors"`
	Recommendations []string      `json:"recommendations" bson:"recommendations"`
}
