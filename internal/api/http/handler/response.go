package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/model"
)

// response is the documented envelope for blog endpoints. Clients rely
// on this exact shape, there are no alternative layouts.
type response struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, response{Success: true, Data: data})
}

func respondList(c *gin.Context, code int, count int, data any) {
	c.JSON(code, response{Success: true, Count: &count, Data: data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, response{Success: false, Message: message})
}

type userPayload struct {
	ID        model.ID  `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserPayload(u model.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type blogPayload struct {
	ID        model.ID         `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Tags      []string         `json:"tags"`
	Status    model.BlogStatus `json:"status"`
	User      string           `json:"user,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func newBlogPayload(b model.Blog) blogPayload {
	tags := b.Tags
	if tags == nil {
		tags = model.Tags{}
	}
	return blogPayload{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Tags:      tags,
		Status:    b.Status,
		User:      b.OwnerID.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func newBlogPayloads(blogs []model.Blog) []blogPayload {
	out := make([]blogPayload, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, newBlogPayload(b))
	}
	return out
}
