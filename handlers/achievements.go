package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finaura/api/logger"
)

func (a *API) HandleGetAchievements(c *gin.Context) {
	userID := c.Param("user_id")

	achievements, err := a.Store.GetAchievementsByUserID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching achievements",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, achievements)
}
