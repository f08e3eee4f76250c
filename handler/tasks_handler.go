package handler

import (
	"errors"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskRepo *repository.DailyTaskRepo
}

func NewTaskHandler(taskRepo *repository.DailyTaskRepo) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

type createTaskRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Emoji     string `json:"emoji"`
	Title     string `json:"title" binding:"required"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
	IsPreset  bool   `json:"isPreset"`
}

type patchTaskRequest struct {
	Completed *bool `json:"completed"`
}

// GetTasks returns the day's task list; no document means an empty list,
// not an error.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	tasks, err := h.taskRepo.GetTasks(c.Request.Context(), userID, date)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"tasks": tasks})
}

// CreateTask appends one task to the user's list for that date, creating
// the day's document when needed.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	task := model.Task{
		ID:        utils.GenerateID(),
		Emoji:     req.Emoji,
		Title:     req.Title,
		Time:      req.Time,
		Completed: req.Completed,
		IsPreset:  req.IsPreset,
	}

	if err := h.taskRepo.AddTask(c.Request.Context(), req.UserID, req.Date, task); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"task": task})
}

// PatchTask updates the completed flag of one task and returns the
// post-patch view.
func (h *TaskHandler) PatchTask(c *gin.Context) {
	taskID := c.Param("id")
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	var req patchTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}
	if req.Completed == nil {
		utils.BadRequest(c, "nothing to update")
		return
	}

	err := h.taskRepo.SetTaskCompleted(c.Request.Context(), userID, date, taskID, *req.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "task not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	task, err := h.taskRepo.FindTask(c.Request.Context(), userID, date, taskID)
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"task": task})
}

// DeleteTask removes one task by id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	err := h.taskRepo.RemoveTask(c.Request.Context(), userID, date, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "task not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "Task deleted", nil)
}

// MarkAllComplete flips every task of the day to completed.
func (h *TaskHandler) MarkAllComplete(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		utils.BadRequest(c, "userId and date are required")
		return
	}

	updated, err := h.taskRepo.MarkAllComplete(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "no tasks for this day")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"updated": updated})
}
