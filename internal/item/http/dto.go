package http

import (
	"time"

	"github.com/shareit/backend/internal/booking"
	"github.com/shareit/backend/internal/item"
)

// ItemTag is the short {id, name} form embedded in booking responses.
type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

// BookingRef is the booking summary attached to an owner's item view.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

func newBookingRef(b *booking.Booking) *BookingRef {
	if b == nil {
		return nil
	}
	return &BookingRef{ID: b.ID, BookerID: b.BookerID}
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

// ItemDetailResponse is the item view with comments and, for the owner,
// the nearest bookings.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRef       `json:"lastBooking,omitempty"`
	NextBooking *BookingRef       `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

func NewItemDetailResponse(i *item.Item, nearest booking.NearestBookings, comments []*item.Comment) ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: NewItemResponse(i),
		LastBooking:  newBookingRef(nearest.Last),
		NextBooking:  newBookingRef(nearest.Next),
		Comments:     make([]CommentResponse, len(comments)),
	}
	for idx, c := range comments {
		resp.Comments[idx] = NewCommentResponse(c)
	}
	return resp
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
