// Package score computes the FinAura Score: a composite financial-engagement
// score in [30,100] derived from a user's bill history.
package score

import (
	"fmt"
	"math"

	"finaura/api/models"
)

const (
	// DefaultScore is returned for users with no bill history and by
	// Fallback when the history could not be loaded at all.
	DefaultScore = 50.0

	minScore = 30.0
	maxScore = 100.0
)

// Calculate derives the score explanation from a user's bills. Only the
// amount and category fields are consulted. The function is total: every
// input, including an empty history, produces a well-formed result.
func Calculate(bills []models.Bill) models.ScoreExplanation {
	if len(bills) == 0 {
		return models.ScoreExplanation{
			Score: DefaultScore,
			Factors: []models.ScoreFactor{
				{Name: "Payment History", Value: 0, Impact: "No data"},
				{Name: "Bill Consistency", Value: 0, Impact: "No data"},
				{Name: "Financial Activity", Value: 0, Impact: "No data"},
			},
			Recommendations: []string{
				"Start uploading bills to build your financial profile",
				"Regular bill payments improve your score",
				"Diverse payment categories strengthen your profile",
			},
		}
	}

	var total float64
	categories := make(map[string]struct{})
	for _, bill := range bills {
		total += bill.Amount
		categories[bill.Category] = struct{}{}
	}
	count := len(bills)

	categoryScore := math.Min(float64(len(categories))*10, 30)
	frequencyScore := math.Min(float64(count)*5, 40)

	avg := total / float64(count)
	amountScore := 10.0
	if avg > 0 {
		amountScore = math.Min(30, (avg/100)*10)
	}

	raw := categoryScore + frequencyScore + amountScore
	clamped := math.Max(minScore, math.Min(maxScore, raw))
	final := math.Round(clamped*10) / 10

	factors := []models.ScoreFactor{
		{
			Name:   "Bill Payment History",
			Value:  count,
			Impact: pick(count > 5, "Positive", "Moderate"),
			Score:  frequencyScore,
		},
		{
			Name:   "Category Diversity",
			Value:  len(categories),
			Impact: pick(len(categories) > 3, "Positive", "Needs Improvement"),
			Score:  categoryScore,
		},
		{
			Name:   "Financial Activity Level",
			Value:  fmt.Sprintf("%.2f", total),
			Impact: pick(total > 1000, "Active", "Growing"),
			Score:  amountScore,
		},
	}

	var recommendations []string
	if count < 5 {
		recommendations = append(recommendations, "Upload more bills to establish a stronger payment history")
	}
	if len(categories) < 3 {
		recommendations = append(recommendations, "Diversify your payment categories to improve your score")
	}
	if final < 70 {
		recommendations = append(recommendations, "Keep uploading bills regularly to boost your FinAura Score")
	} else {
		recommendations = append(recommendations, "Great job! Your financial behavior is excellent")
	}

	return models.ScoreExplanation{
		Score:           final,
		Factors:         factors,
		Recommendations: recommendations,
	}
}

// Fallback is the documented degrade-to-default result: callers that fail
// to load the bill history return this instead of surfacing the error.
func Fallback() models.ScoreExplanation {
	return models.ScoreExplanation{
		Score:           DefaultScore,
		Factors:         []models.ScoreFactor{},
		Recommendations: []string{"Error calculating score. Please try again."},
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
