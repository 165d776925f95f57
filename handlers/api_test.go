package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"finaura/api/models"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	users        map[string]*models.UserProfile
	bills        []models.Bill
	messages     []models.ChatMessage
	achievements []models.Achievement
	vaultLogs    []models.VaultAccessLog

	billsErr error
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.UserProfile)}
}

func (m *memStore) CreateUser(_ context.Context, user *models.UserProfile) error {
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetUser(_ context.Context, userID string) (*models.UserProfile, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memStore) SetUserScore(_ context.Context, userID string, scoreValue float64) error {
	if user, ok := m.users[userID]; ok {
		user.FinauraScore = scoreValue
	}
	return nil
}

func (m *memStore) IncrementUserStats(_ context.Context, userID string, amount float64) error {
	if user, ok := m.users[userID]; ok {
		user.TotalBills++
		user.TotalTransactions += amount
	}
	return nil
}

func (m *memStore) CreateBill(_ context.Context, bill *models.Bill) error {
	m.bills = append(m.bills, *bill)
	return nil
}

func (m *memStore) GetBillsByUserID(_ context.Context, userID string) ([]models.Bill, error) {
	if m.billsErr != nil {
		return nil, m.billsErr
	}
	var out []models.Bill
	for _, b := range m.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CreateChatMessage(_ context.Context, message *models.ChatMessage) error {
	m.messages = append(m.messages, *message)
	return nil
}

func (m *memStore) GetChatHistory(_ context.Context, sessionID string, limit int64) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) HasAchievement(_ context.Context, userID, title string) (bool, error) {
	for _, a := range m.achievements {
		if a.UserID == userID && a.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateAchievement(_ context.Context, achievement *models.Achievement) error {
	m.achievements = append(m.achievements, *achievement)
	return nil
}

func (m *memStore) GetAchievementsByUserID(_ context.Context, userID string) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range m.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) CreateVaultLog(_ context.Context, log *models.VaultAccessLog) error {
	m.vaultLogs = append(m.vaultLogs, *log)
	return nil
}

func (m *memStore) GetVaultLogsByUserID(_ context.Context, userID string) ([]models.VaultAccessLog, error) {
	var out []models.VaultAccessLog
	for _, l := range m.vaultLogs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeAnalyzer struct {
	data map[string]any
	err  error
}

func (f *fakeAnalyzer) AnalyzeBillImage(context.Context, string) (map[string]any, error) {
	return f.data, f.err
}

type fakeChat struct {
	reply string
	err   error
}

func (f *fakeChat) ChatReply(context.Context, []models.ChatMessage, string) (string, error) {
	return f.reply, f.err
}

// newTestAPI wires an API with deterministic IDs and clock onto a fresh
// router.
func newTestAPI(store Store, analyzer BillAnalyzer, chat ChatCompleter) (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	api := New(store, analyzer, chat)
	n := 0
	api.NewID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	api.Now = func() time.Time {
		return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	router := gin.New()
	api.RegisterRoutes(router.Group("/api"))
	return api, router
}
