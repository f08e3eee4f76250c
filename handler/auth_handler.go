package handler

import (
	"errors"
	"time"

	"github.com/Lasya-02/Mama-Sync/dto"
	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/services"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userRepo *repository.UserRepo
}

func NewAuthHandler(userRepo *repository.UserRepo) *AuthHandler {
	return &AuthHandler{userRepo: userRepo}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// profileRequest is the shared body of registration and profile update.
type profileRequest struct {
	Email            string  `json:"email" binding:"required,email"`
	Name             string  `json:"name" binding:"required"`
	Password         string  `json:"password" binding:"required,password"`
	PregnancyMonth   int     `json:"pregnancyMonth" binding:"min=0,max=10"`
	Working          bool    `json:"working"`
	WorkHours        int     `json:"workHours" binding:"min=0"`
	WakeTime         string  `json:"wakeTime"`
	SleepTime        string  `json:"sleepTime"`
	MealTime         string  `json:"mealTime"`
	EmergencyContact string  `json:"emergencyContact"`
	DueDate          string  `json:"dueDate" binding:"required"`
	Height           float64 `json:"height" binding:"min=0"`
	Weight           float64 `json:"weight" binding:"min=0"`
}

// Login checks credentials and issues a bearer token. Unknown email and
// wrong password produce the same 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.userRepo.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.TrackAuthAttempt("failure", "user_not_found")
			utils.Unauthorized(c, "incorrect email or password")
			return
		}
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "internal server error")
		return
	}

	match, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "invalid_password")
		utils.Unauthorized(c, "incorrect email or password")
		return
	}

	token, err := services.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"token": token,
		"user":  dto.ToUserResponse(user),
	})
}

// Register creates a new account; an already-registered email is a 400.
func (h *AuthHandler) Register(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	_, err := h.userRepo.FindUserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		utils.TrackAuthAttempt("failure", "email_exists")
		utils.BadRequest(c, "email already registered")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "internal server error")
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user := &model.User{
		Email:            req.Email,
		Name:             req.Name,
		Password:         hashed,
		PregnancyMonth:   req.PregnancyMonth,
		Working:          req.Working,
		WorkHours:        req.WorkHours,
		WakeTime:         req.WakeTime,
		SleepTime:        req.SleepTime,
		MealTime:         req.MealTime,
		EmergencyContact: req.EmergencyContact,
		DueDate:          req.DueDate,
		Height:           req.Height,
		Weight:           req.Weight,
		CreatedAt:        time.Now().UTC(),
	}

	userID, err := h.userRepo.AddUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "email already registered")
			return
		}
		utils.TrackError("auth", "registration_failed")
		utils.InternalError(c, "internal server error")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, "User registered successfully", gin.H{
		"user_id": userID,
		"email":   user.Email,
	})
}

// UpdateProfile replaces the profile of the user identified by email.
// The password field is required by the shared schema but not rewritten
// here; password changes go through registration-time hashing only.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := h.userRepo.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.BadRequest(c, "user not found")
			return
		}
		utils.TrackError("auth", "user_lookup")
		utils.InternalError(c, "internal server error")
		return
	}

	update := &model.User{
		Name:             req.Name,
		PregnancyMonth:   req.PregnancyMonth,
		Working:          req.Working,
		WorkHours:        req.WorkHours,
		WakeTime:         req.WakeTime,
		SleepTime:        req.SleepTime,
		MealTime:         req.MealTime,
		EmergencyContact: req.EmergencyContact,
		DueDate:          req.DueDate,
		Height:           req.Height,
		Weight:           req.Weight,
	}

	if err := h.userRepo.UpdateProfile(c.Request.Context(), existing.ID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.BadRequest(c, "user not found")
			return
		}
		utils.TrackError("database", "profile_update_failed")
		utils.InternalError(c, "internal server error")
		return
	}

	utils.SuccessWithMessage(c, "User updated successfully", gin.H{
		"user_id": existing.ID.Hex(),
		"email":   req.Email,
	})
}

// GetUsers lists every account.
func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.userRepo.FindAllUsers(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}
	utils.Success(c, dto.ToUserResponses(users))
}

// GetUserByID returns one account by its id.
func (h *AuthHandler) GetUserByID(c *gin.Context) {
	user, err := h.userRepo.FindUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}
	utils.Success(c, dto.ToUserResponse(user))
}
