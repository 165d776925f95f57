package llm

import (
	"context"
	"fmt"

	"finaura/api/models"
)

const botSystemPrompt = `You are FinAura Bot, a helpful AI assistant for the FinAura finance app.
You help users navigate the app, understand their FinAura Score, manage bills, and improve their financial health.
Be friendly, concise, and provide actionable advice. Guide users on:
- How to upload bills
- Understanding their credit score
- Unlocking achievements
- Managing their financial data vault
- Financial literacy tips`

// ChatReply sends the session history plus the new user message to the
// model and returns the assistant's reply.
func (c *Client) ChatReply(ctx context.Context, history []models.ChatMessage, userMessage string) (string, error) {
	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: botSystemPrompt})
	for _, m := range history {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: models.RoleUser, Content: userMessage})

	reply, err := c.complete(ctx, messages, 0, 0.7)
	if err != nil {
		return "", fmt.Errorf("generating chat reply: %w", err)
	}
	return reply, nil
}
