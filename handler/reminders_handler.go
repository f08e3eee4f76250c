package handler

import (
	"errors"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderRepo *repository.ReminderRepo
}

func NewReminderHandler(reminderRepo *repository.ReminderRepo) *ReminderHandler {
	return &ReminderHandler{reminderRepo: reminderRepo}
}

type reminderRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Category    string `json:"category"`
	Repeat      string `json:"repeat"`
}

// GetReminders returns all of the user's reminders; none yet means an
// empty list.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.BadRequest(c, "userId is required")
		return
	}

	reminders, err := h.reminderRepo.GetReminders(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"reminders": reminders})
}

// CreateReminder appends a reminder to the user's document.
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	reminder := model.Reminder{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Repeat:      req.Repeat,
	}

	if err := h.reminderRepo.AddReminder(c.Request.Context(), req.UserID, reminder); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"reminders": reminder})
}

// UpdateReminder replaces one reminder's fields and returns the updated
// view.
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	reminderID := c.Param("id")

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	update := model.Reminder{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Repeat:      req.Repeat,
	}

	err := h.reminderRepo.UpdateReminder(c.Request.Context(), req.UserID, reminderID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "reminder not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	reminder, err := h.reminderRepo.FindReminder(c.Request.Context(), req.UserID, reminderID)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"reminders": reminder})
}

// DeleteReminder removes one reminder by id.
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	reminderID := c.Param("id")
	userID := c.Query("userId")
	if userID == "" {
		utils.BadRequest(c, "userId is required")
		return
	}

	err := h.reminderRepo.RemoveReminder(c.Request.Context(), userID, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "reminder not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Reminder deleted", nil)
}
