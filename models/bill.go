package models

import "time"

// Bill is one uploaded receipt/invoice. Immutable after creation.
// ExtractedData holds the raw key-value payload returned by the vision
// model; the typed fields below are the defaulted projection of it.
type Bill struct {
	ID            string         `json:"id" bson:"id"`
	UserID        string         `json:"user_id" bson:"user_id"`
	ImageData     string         `json:"image_data,omitempty" bson:"image_data,omitempty"`
	ExtractedData map[string]any `json:"extracted_data" bson:"extracted_data"`
	Amount        float64        `json:"amount" bson:"amount"`
	Vendor        string         `json:"vendor" bson:"vendor"`
	Date          string         `json:"date" bson:"date"`
	Category      string         `json:"category" bson:"category"`
	CreatedAt     string         `json:"created_at" bson:"created_at"`
}

// NewBill builds a Bill from a vision-extraction payload, substituting
// defaults for anything the model left out: amount 0, vendor "Unknown",
// date today, category "Other".
func NewBill(userID string, extracted map[string]any, newID func() string, now func() time.Time) *Bill {
	return &Bill{
		ID:            newID(),
		UserID:        userID,
		ExtractedData: extracted,
		Amount:        numberField(extracted, "amount", 0),
		Vendor:        stringField(extracted, "vendor", "Unknown"),
		Date:          stringField(extracted, "date", now().UTC().Format("2006-01-02")),
		Category:      stringField(extracted, "category", "Other"),
		CreatedAt:     ISOTime(now()),
	}
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func numberField(m map[string]any, key string, fallback float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}
