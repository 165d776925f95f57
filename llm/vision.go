package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
)

const analyzerSystemPrompt = "You are a financial document analyzer. Extract bill/invoice details accurately."

const extractionPrompt = `Analyze this bill/invoice image and extract the following information in JSON format:
{
    "vendor": "vendor name",
    "amount": total amount as number,
    "date": "date in YYYY-MM-DD format",
    "category": "category like groceries, utilities, shopping, food, etc",
    "items": ["list of items if visible"],
    "payment_method": "cash/card/upi if visible"
}

Respond ONLY with valid JSON, no additional text.`

// Models rarely violate the "JSON only" instruction, but when they do the
// JSON is usually wrapped in prose or a code fence; grab the outermost
// object and try again.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// AnalyzeBillImage sends a base64-encoded bill image to the vision model
// and returns the extracted key-value payload. No schema is enforced on
// the result; callers substitute defaults for missing fields.
func (c *Client) AnalyzeBillImage(ctx context.Context, imageBase64 string) (map[string]any, error) {
	messages := []chatMessage{
		{Role: "system", Content: analyzerSystemPrompt},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: extractionPrompt},
			{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + imageBase64}},
		}},
	}

	response, err := c.complete(ctx, messages, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("analyzing bill image: %w", err)
	}

	data, err := extractJSONObject(response)
	if err != nil {
		return nil, fmt.Errorf("analyzing bill image: %w", err)
	}
	return data, nil
}

// extractJSONObject parses s as a JSON object, falling back to the first
// {...} block when the response carries extra text around the JSON.
func extractJSONObject(s string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(s), &data); err == nil {
		return data, nil
	}

	if match := jsonObjectRe.FindString(s); match != "" {
		if err := json.Unmarshal([]byte(match), &data); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("could not parse JSON from response")
}
