package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finaura/api/logger"
	"finaura/api/models"
)

// chatHistoryLimit caps how much history rides along on each chat call.
const chatHistoryLimit = 100

func (a *API) HandleChatMessage(c *gin.Context) {
	sessionID := c.Query("session_id")
	message := c.Query("message")
	if sessionID == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and message are required"})
		return
	}

	history, err := a.Store.GetChatHistory(c, sessionID, chatHistoryLimit)
	if err != nil {
		logger.Get().Error("error fetching chat history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reply, err := a.Chat.ChatReply(c, history, message)
	if err != nil {
		logger.Get().Error("error generating chat reply",
			zap.String("session_id", sessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userMsg := models.NewChatMessage(sessionID, models.RoleUser, message, a.NewID, a.Now)
	botMsg := models.NewChatMessage(sessionID, models.RoleAssistant, reply, a.NewID, a.Now)
	for _, msg := range []*models.ChatMessage{userMsg, botMsg} {
		if err := a.Store.CreateChatMessage(c, msg); err != nil {
			logger.Get().Error("error persisting chat message",
				zap.String("session_id", sessionID),
				zap.String("role", msg.Role),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"response": reply, "session_id": sessionID})
}

func (a *API) HandleGetChatHistory(c *gin.Context) {
	sessionID := c.Param("session_id")

	messages, err := a.Store.GetChatHistory(c, sessionID, 0)
	if err != nil {
		logger.Get().Error("error fetching chat history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}
