// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"encoding/json"
	"time"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/users/domain/entity"
)

// ActionRequest is the body of POST /users.
// Data is decoded according to Action.
type ActionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// UserPayload carries the user fields of add, update and register requests.
// Fields keep padded values untouched and accept bare numbers, so a phone
// sent as 561234567 is rejected by validation rather than by the decoder.
type UserPayload struct {
	ID       api.ID   `json:"id"`
	UserID   api.ID   `json:"userId"`
	Name     api.Text `json:"name"`
	Email    api.Text `json:"email"`
	Phone    api.Text `json:"phone"`
	Category api.Text `json:"category"`
}

// Input converts the payload to a usecase input.
func (p UserPayload) Input() entity.UserInput {
	return entity.UserInput{
		Name:     string(p.Name),
		Email:    string(p.Email),
		Phone:    string(p.Phone),
		Category: string(p.Category),
	}
}

// TargetID returns id, falling back to userId.
func (p UserPayload) TargetID() uint {
	return api.First(p.ID, p.UserID)
}

// DeleteData selects the user to delete, by id or by email.
type DeleteData struct {
	ID     api.ID   `json:"id"`
	UserID api.ID   `json:"userId"`
	Email  api.Text `json:"email"`
}

// ValidateRequest is the body of POST /users/validate.
type ValidateRequest struct {
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
	Profile string `json:"profile"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Category string    `json:"category"`
	JoinDate time.Time `json:"joinDate"`
}

// ListResponse is the body of GET /users.
// Total, Page and Size are only set for filtered or paged queries.
type ListResponse struct {
	Users []UserResponse `json:"users"`
	Total *int64         `json:"total,omitempty"`
	Page  int            `json:"page,omitempty"`
	Size  int            `json:"size,omitempty"`
}

// UserResultResponse is returned by successful add, update and register.
type UserResultResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// FromEntity maps a user entity to its response form.
func FromEntity(u entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Category: u.Category,
		JoinDate: u.CreatedAt,
	}
}

// FromEntities maps a slice of users; the result is never nil.
func FromEntities(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromEntity(u))
	}
	return out
}
