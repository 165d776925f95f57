package handlers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finaura/api/logger"
	"finaura/api/models"
)

// HandleUploadBill accepts a multipart bill image, runs it through the
// vision model, persists the bill, bumps the user's counters, and unlocks
// any achievements the new count qualifies for.
func (a *API) HandleUploadBill(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Get().Error("error opening uploaded file",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		logger.Get().Error("error reading uploaded file",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	imageBase64 := base64.StdEncoding.EncodeToString(contents)

	extracted, err := a.Analyzer.AnalyzeBillImage(c, imageBase64)
	if err != nil {
		logger.Get().Error("error analyzing bill image",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze bill: " + err.Error()})
		return
	}

	bill := models.NewBill(userID, extracted, a.NewID, a.Now)
	if err := a.Store.CreateBill(c, bill); err != nil {
		logger.Get().Error("error persisting bill",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := a.Store.IncrementUserStats(c, userID, bill.Amount); err != nil {
		logger.Get().Error("error updating user stats",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := a.unlockAchievements(c, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("bill uploaded",
		zap.String("user_id", userID),
		zap.String("bill_id", bill.ID),
		zap.Float64("amount", bill.Amount))
	c.JSON(http.StatusOK, gin.H{"success": true, "bill": bill, "extracted_data": extracted})
}

func (a *API) unlockAchievements(c *gin.Context, userID string) error {
	user, err := a.Store.GetUser(c, userID)
	if err != nil {
		logger.Get().Error("error fetching user for achievements",
			zap.String("user_id", userID),
			zap.Error(err))
		return err
	}
	if user == nil {
		// Bill uploads for unknown users still persist the bill; there
		// is just no counter to evaluate.
		return nil
	}

	unlocked, err := a.evaluator().Evaluate(c, userID, user.TotalBills)
	if err != nil {
		logger.Get().Error("error unlocking achievements",
			zap.String("user_id", userID),
			zap.Error(err))
		return err
	}
	for _, achievement := range unlocked {
		logger.Get().Info("achievement unlocked",
			zap.String("user_id", userID),
			zap.String("title", achievement.Title))
	}
	return nil
}

func (a *API) HandleGetUserBills(c *gin.Context) {
	userID := c.Param("user_id")

	bills, err := a.Store.GetBillsByUserID(c, userID)
	if err != nil {
		logger.Get().Error("error fetching bills",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bills)
}
