package handler

import (
	"errors"
	"time"

	"github.com/Lasya-02/Mama-Sync/dto"
	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	forumRepo *repository.ForumRepo
}

func NewForumHandler(forumRepo *repository.ForumRepo) *ForumHandler {
	return &ForumHandler{forumRepo: forumRepo}
}

type createPostRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type createReplyRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreatePost publishes a new post with an empty reply list.
func (h *ForumHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	post := &model.ForumPost{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}

	if _, err := h.forumRepo.CreatePost(c.Request.Context(), post); err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Created(c, "Post created", dto.ToForumPostResponse(post))
}

// GetPosts lists posts, optionally scoped to one author via ?userId=.
func (h *ForumHandler) GetPosts(c *gin.Context) {
	posts, err := h.forumRepo.FindPosts(c.Request.Context(), c.Query("userId"))
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}
	utils.Success(c, dto.ToForumPostResponses(posts))
}

// GetPost returns one post with its replies.
func (h *ForumHandler) GetPost(c *gin.Context) {
	post, err := h.forumRepo.FindPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "post not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}
	utils.Success(c, dto.ToForumPostResponse(post))
}

// AddReply appends a reply to a post. Replies cannot be edited or
// removed later.
func (h *ForumHandler) AddReply(c *gin.Context) {
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	reply := model.Reply{
		ID:        utils.GenerateID(),
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	err := h.forumRepo.AddReply(c.Request.Context(), c.Param("id"), reply)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "post not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Created(c, "Reply added", reply)
}

// GetReplies returns the reply list of one post.
func (h *ForumHandler) GetReplies(c *gin.Context) {
	post, err := h.forumRepo.FindPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "post not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	replies := post.Replies
	if replies == nil {
		replies = []model.Reply{}
	}
	utils.Success(c, replies)
}
