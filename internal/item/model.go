package item

import (
	"context"
	"net/http"
	"time"

	"github.com/shareit/backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "item not found")
	ErrNameRequired        = apperror.New(http.StatusBadRequest, "name is required")
	ErrDescriptionRequired = apperror.New(http.StatusBadRequest, "description is required")
	ErrNotAuthorised       = apperror.New(http.StatusBadRequest, "commenting requires a completed booking of the item")
	ErrCommentRequired     = apperror.New(http.StatusBadRequest, "comment text is required")
	ErrInUse               = apperror.New(http.StatusConflict, "item is referenced by bookings or comments")
)

// Item is a thing offered for sharing. Available=false blocks new bookings
// but keeps the item visible to its owner.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Comment is feedback left by a user who previously booked the item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingHistory answers whether a user already finished a booking of an
// item. Implemented by the booking storage layer; defined here so the item
// module does not depend on the booking module.
type BookingHistory interface {
	HasCompletedBooking(ctx context.Context, itemID, bookerID int64, at time.Time) (bool, error)
}
