package handler

import (
	"errors"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type WaterIntakeHandler struct {
	waterRepo *repository.WaterIntakeRepo
}

func NewWaterIntakeHandler(waterRepo *repository.WaterIntakeRepo) *WaterIntakeHandler {
	return &WaterIntakeHandler{waterRepo: waterRepo}
}

type createWaterIntakeRequest struct {
	UserID        string `json:"userId" binding:"required"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	GoalIntake    int    `json:"goalIntake" binding:"required,min=1"`
	CurrentIntake int    `json:"currentIntake" binding:"min=0"`
}

type addWaterIntakeRequest struct {
	Amount int `json:"amount" binding:"required,min=1"` // ml
}

type waterGoalRequest struct {
	GoalIntake int `json:"goalIntake" binding:"required,min=1"` // ml
}

// GetWaterIntake returns the day's record, synthesizing a fresh one on
// first access: intake 0 and the user's last known goal, or 2000 ml.
func (h *WaterIntakeHandler) GetWaterIntake(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	ctx := c.Request.Context()

	intake, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if err == nil {
		utils.Success(c, gin.H{"data": intake})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.InternalError(c, "internal server error")
		return
	}

	goal, err := h.waterRepo.FindLatestGoal(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			utils.InternalError(c, "internal server error")
			return
		}
		goal = model.DefaultGoalIntake
	}

	fresh := &model.WaterIntake{
		UserID:        userID,
		Date:          date,
		GoalIntake:    goal,
		CurrentIntake: 0,
	}
	if err := h.waterRepo.Create(ctx, fresh); err != nil {
		// A concurrent request may have created the record first.
		if errors.Is(err, repository.ErrDuplicate) {
			if intake, err = h.waterRepo.FindByUserAndDate(ctx, userID, date); err == nil {
				utils.Success(c, gin.H{"data": intake})
				return
			}
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "New day started - water intake reset", gin.H{"data": fresh})
}

// CreateWaterIntake is the strict create: a record that already exists
// is rejected, never merged.
func (h *WaterIntakeHandler) CreateWaterIntake(c *gin.Context) {
	var req createWaterIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	intake := &model.WaterIntake{
		UserID:        req.UserID,
		Date:          req.Date,
		GoalIntake:    req.GoalIntake,
		CurrentIntake: req.CurrentIntake,
	}

	if err := h.waterRepo.Create(c.Request.Context(), intake); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "water intake record already exists for this date")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Created(c, "Water intake record created", gin.H{"data": intake})
}

// AddWaterIntake increments the day's intake, creating the record with
// the default goal when the day has none yet.
func (h *WaterIntakeHandler) AddWaterIntake(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	var req addWaterIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "amount must be a positive number of ml")
		return
	}

	ctx := c.Request.Context()

	_, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		fresh := &model.WaterIntake{
			UserID:        userID,
			Date:          date,
			GoalIntake:    model.DefaultGoalIntake,
			CurrentIntake: req.Amount,
		}
		if err := h.waterRepo.Create(ctx, fresh); err == nil {
			utils.SuccessWithMessage(c, "Water intake tracked", gin.H{"data": fresh})
			return
		}
		// Lost the race to a concurrent create; fall through to increment.
	} else if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	if err := h.waterRepo.IncrementIntake(ctx, userID, date, req.Amount); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "failed to update water intake")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	updated, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Water intake updated", gin.H{"data": updated})
}

// UpdateWaterGoal sets the day's goal, creating the record when absent.
func (h *WaterIntakeHandler) UpdateWaterGoal(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	var req waterGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "goalIntake must be a positive number of ml")
		return
	}

	ctx := c.Request.Context()

	_, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		fresh := &model.WaterIntake{
			UserID:        userID,
			Date:          date,
			GoalIntake:    req.GoalIntake,
			CurrentIntake: 0,
		}
		if err := h.waterRepo.Create(ctx, fresh); err == nil {
			utils.SuccessWithMessage(c, "Water intake goal set", gin.H{"data": fresh})
			return
		}
	} else if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	if err := h.waterRepo.SetGoal(ctx, userID, date, req.GoalIntake); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	updated, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Water intake goal updated", gin.H{"data": updated})
}

// ResetWaterIntake sets the day's intake back to zero. Resetting twice
// is fine; both calls leave currentIntake at 0.
func (h *WaterIntakeHandler) ResetWaterIntake(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.waterRepo.FindByUserAndDate(ctx, userID, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "water intake record not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	if err := h.waterRepo.SetIntake(ctx, userID, date, 0); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	updated, err := h.waterRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Water intake reset", gin.H{"data": updated})
}

// DeleteWaterIntake removes the day's record.
func (h *WaterIntakeHandler) DeleteWaterIntake(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	if err := h.waterRepo.Delete(c.Request.Context(), userID, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "water intake record not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Water intake record deleted", nil)
}
