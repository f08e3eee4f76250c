package dto

import (
	"time"

	"github.com/Lasya-02/Mama-Sync/model"
)

type ForumPostResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Replies   []model.Reply `json:"replies"`
}

func ToForumPostResponse(post *model.ForumPost) ForumPostResponse {
	replies := post.Replies
	if replies == nil {
		replies = []model.Reply{}
	}
	return ForumPostResponse{
		ID:        post.ID.Hex(),
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Replies:   replies,
	}
}

func ToForumPostResponses(posts []*model.ForumPost) []ForumPostResponse {
	responses := make([]ForumPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, ToForumPostResponse(post))
	}
	return responses
}
