package handlers

import (
	"time"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
)

// PostView is the JSON representation of a post.
type PostView struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Published  bool              `json:"published"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	AuthorID   int64             `json:"author_id"`
	Author     string            `json:"author"`
	Categories []models.Category `json:"categories"`
}

// CommentView is the JSON representation of a comment.
type CommentView struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  int64     `json:"author_id"`
	Author    string    `json:"author"`
	PostID    int64     `json:"post_id"`
}

// UserView is the JSON representation of a user, including its role.
type UserView struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func newPostView(p *models.Post) PostView {
	cats := p.Categories
	if cats == nil {
		cats = []models.Category{}
	}
	return PostView{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		Published:  p.Published,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		AuthorID:   p.AuthorID,
		Author:     username(p.Author),
		Categories: cats,
	}
}

func newPostViews(posts []models.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for i := range posts {
		out = append(out, newPostView(&posts[i]))
	}
	return out
}

func newCommentView(c *models.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		Body:      c.Body,
		Visible:   c.Visible,
		CreatedAt: c.CreatedAt,
		AuthorID:  c.AuthorID,
		Author:    username(c.Author),
		PostID:    c.PostID,
	}
}

func newCommentViews(comments []models.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for i := range comments {
		out = append(out, newCommentView(&comments[i]))
	}
	return out
}

func newUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func newUserViews(users []models.User) []UserView {
	out := make([]UserView, 0, len(users))
	for i := range users {
		out = append(out, newUserView(&users[i]))
	}
	return out
}
