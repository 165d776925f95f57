package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finaura/api/logger"
	"finaura/api/models"
)

// HandleGrantVaultAccess records a simulated access grant. The grant
// always succeeds; the vault is an audit log, not an access-control
// mechanism.
func (a *API) HandleGrantVaultAccess(c *gin.Context) {
	userID := c.Query("user_id")
	accessor := c.Query("accessor")
	purpose := c.Query("purpose")
	if userID == "" || accessor == "" || purpose == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, accessor and purpose are required"})
		return
	}

	log := models.NewVaultAccessLog(userID, accessor, purpose, a.NewID, a.Now)
	if err := a.Store.CreateVaultLog(c, log); err != nil {
		logger.Get().Error("error persisting vault log",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Access granted via blockchain smart contract",
		"log":     log,
	})
}

func (a *API) HandleGetVaultLogs(c *gin.Context) {
	userID := c.Param("user_id")

	logs, err := a.Store.GetVaultLogsByUserID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching vault logs",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
