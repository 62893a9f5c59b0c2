package http

import (
	"time"

	"github.com/shareit/backend/internal/booking"
	itemHttp "github.com/shareit/backend/internal/item/http"
	"github.com/shareit/backend/internal/pkg/request"
	userHttp "github.com/shareit/backend/internal/user/http"
)

type BookingResponse struct {
	ID     int64            `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
	Item   itemHttp.ItemTag `json:"item"`
	Booker userHttp.UserTag `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
	}
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.Start.Before(r.End) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// ListBookingsRequest defines query parameters for both listing views.
type ListBookingsRequest struct {
	request.ListParams
	State string `form:"state,default=ALL"`
}
