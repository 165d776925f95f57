package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finaura/api/logger"
	"finaura/api/models"
	"finaura/api/score"
)

func (a *API) HandleCreateUser(c *gin.Context) {
	name := c.Query("name")
	email := c.Query("email")
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	user := models.NewUserProfile(name, email, a.NewID, a.Now)
	if err := a.Store.CreateUser(c, user); err != nil {
		logger.Get().Error("error creating user",
			zap.String("email", email),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("user created",
		zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, user)
}

func (a *API) HandleGetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := a.Store.GetUser(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// HandleGetUserScore recomputes the FinAura Score from the user's bill
// history, persists it onto the user record, and returns the explanation.
func (a *API) HandleGetUserScore(c *gin.Context) {
	userID := c.Param("id")

	user, err := a.Store.GetUser(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user for score",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var explanation models.ScoreExplanation
	bills, err := a.Store.GetBillsByUserID(c, userID)
	if err != nil {
		// Degrade to the sentinel result rather than failing the
		// request; the score endpoint never errors past this point.
		logger.Get().Error("error fetching bills for score, using fallback",
			zap.String("user_id", userID),
			zap.Error(err))
		explanation = score.Fallback()
	} else {
		explanation = score.Calculate(bills)
	}

	if err := a.Store.SetUserScore(c, userID, explanation.Score); err != nil {
		logger.Get().Error("error persisting score",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, explanation)
}
