package handler

import (
	"errors"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

const moodHistoryLimit = 30

type MoodHandler struct {
	moodRepo *repository.MoodRepo
}

func NewMoodHandler(moodRepo *repository.MoodRepo) *MoodHandler {
	return &MoodHandler{moodRepo: moodRepo}
}

// The mood enum lives in the binding tag; storage never checks it.
type moodRequest struct {
	UserID string `json:"userId" binding:"required"`
	Date   string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Mood   string `json:"mood" binding:"required,oneof=happy calm tired anxious unwell"`
}

const invalidMoodMessage = "invalid mood value, must be one of: happy, calm, tired, anxious, unwell"

// CreateMood saves the day's mood, updating in place when the day
// already has one.
func (h *MoodHandler) CreateMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, invalidMoodMessage)
		return
	}

	ctx := c.Request.Context()

	_, err := h.moodRepo.FindByUserAndDate(ctx, req.UserID, req.Date)
	if err == nil {
		if err := h.moodRepo.Update(ctx, req.UserID, req.Date, model.Mood(req.Mood)); err != nil {
			utils.InternalError(c, "internal server error")
			return
		}
		updated, err := h.moodRepo.FindByUserAndDate(ctx, req.UserID, req.Date)
		if err != nil {
			utils.InternalError(c, "internal server error")
			return
		}
		utils.SuccessWithMessage(c, "Mood updated", gin.H{"data": updated})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.InternalError(c, "internal server error")
		return
	}

	record := &model.MoodRecord{
		UserID: req.UserID,
		Date:   req.Date,
		Mood:   model.Mood(req.Mood),
	}
	if err := h.moodRepo.Create(ctx, record); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Created(c, "Mood saved", gin.H{"data": record})
}

// GetMood returns the day's mood, or the recent history when no date is
// given.
func (h *MoodHandler) GetMood(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.BadRequest(c, "userId is required")
		return
	}

	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		record, err := h.moodRepo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Success(c, gin.H{"data": nil})
				return
			}
			utils.InternalError(c, "internal server error")
			return
		}
		utils.Success(c, gin.H{"data": record})
		return
	}

	records, err := h.moodRepo.FindByUser(ctx, userID, moodHistoryLimit)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}
	utils.Success(c, gin.H{"data": records})
}

// UpdateMood changes an existing day's mood; a missing entry is a 404,
// unlike CreateMood which would create it.
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, invalidMoodMessage)
		return
	}

	ctx := c.Request.Context()

	err := h.moodRepo.Update(ctx, req.UserID, req.Date, model.Mood(req.Mood))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "mood entry not found for this date")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	updated, err := h.moodRepo.FindByUserAndDate(ctx, req.UserID, req.Date)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Mood updated", gin.H{"data": updated})
}

// DeleteMood removes the day's entry.
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	if err := h.moodRepo.Delete(c.Request.Context(), userID, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "mood entry not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Mood entry deleted", nil)
}
