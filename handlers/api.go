// Package handlers wires the HTTP surface. Handlers shuttle data between
// the document store and the AI clients; the only real logic lives in the
// score and achievements packages.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finaura/api/achievements"
	"finaura/api/models"
)

// Store is the document-store surface the handlers need. *mongodb.Store
// satisfies it; tests use an in-memory fake.
type Store interface {
	achievements.Ledger

	CreateUser(ctx context.Context, user *models.UserProfile) error
	GetUser(ctx context.Context, userID string) (*models.UserProfile, error)
	SetUserScore(ctx context.Context, userID string, score float64) error
	IncrementUserStats(ctx context.Context, userID string, amount float64) error

	CreateBill(ctx context.Context, bill *models.Bill) error
	GetBillsByUserID(ctx context.Context, userID string) ([]models.Bill, error)

	CreateChatMessage(ctx context.Context, message *models.ChatMessage) error
	GetChatHistory(ctx context.Context, sessionID string, limit int64) ([]models.ChatMessage, error)

	GetAchievementsByUserID(ctx context.Context, userID string) ([]models.Achievement, error)

	CreateVaultLog(ctx context.Context, log *models.VaultAccessLog) error
	GetVaultLogsByUserID(ctx context.Context, userID string) ([]models.VaultAccessLog, error)
}

// BillAnalyzer extracts structured data from a base64-encoded bill image.
type BillAnalyzer interface {
	AnalyzeBillImage(ctx context.Context, imageBase64 string) (map[string]any, error)
}

// ChatCompleter produces the assistant reply for a chat session.
type ChatCompleter interface {
	ChatReply(ctx context.Context, history []models.ChatMessage, userMessage string) (string, error)
}

type API struct {
	Store    Store
	Analyzer BillAnalyzer
	Chat     ChatCompleter

	// Injected so tests can pin identities and timestamps.
	NewID func() string
	Now   func() time.Time
}

func New(store Store, analyzer BillAnalyzer, chat ChatCompleter) *API {
	return &API{
		Store:    store,
		Analyzer: analyzer,
		Chat:     chat,
		NewID:    uuid.NewString,
		Now:      time.Now,
	}
}

func (a *API) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", a.HandleRoot)

	api.POST("/user/create", a.HandleCreateUser)
	api.GET("/user/:id", a.HandleGetUser)
	api.GET("/user/:id/score", a.HandleGetUserScore)

	api.POST("/bills/upload", a.HandleUploadBill)
	api.GET("/bills/:user_id", a.HandleGetUserBills)

	api.POST("/chat/message", a.HandleChatMessage)
	api.GET("/chat/history/:session_id", a.HandleGetChatHistory)

	api.GET("/achievements/:user_id", a.HandleGetAchievements)

	api.POST("/vault/grant-access", a.HandleGrantVaultAccess)
	api.GET("/vault/logs/:user_id", a.HandleGetVaultLogs)
}

func (a *API) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "FinAura API is running", "status": "active"})
}

func (a *API) evaluator() *achievements.Evaluator {
	return &achievements.Evaluator{Ledger: a.Store, NewID: a.NewID, Now: a.Now}
}
