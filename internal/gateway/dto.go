package gateway

import (
	"net/http"
	"time"

	"github.com/shareit/backend/internal/booking"
	"github.com/shareit/backend/internal/pkg/apperror"
)

var errStartInPast = apperror.New(http.StatusBadRequest, "start must not be in the past")

// The gateway binds the same JSON shapes the server accepts, rejecting
// malformed requests before they cross the wire.

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate enforces the date invariants the edge is responsible for:
// a well-ordered window that has not already begun.
func (r *CreateBookingRequest) Validate() error {
	if !r.Start.Before(r.End) {
		return booking.ErrInvalidTimeRange
	}
	if r.Start.Before(time.Now()) {
		return errStartInPast
	}
	return nil
}
