package booking

import (
	"net/http"
	"time"

	"github.com/shareit/backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidTimeRange     = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrItemUnavailable      = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrStatusAlreadyChanged = apperror.New(http.StatusConflict, "booking status already changed")
)

// Status is the approval state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is reserved in the schema; no operation produces it yet.
	StatusCanceled Status = "CANCELED"
)

// State is a filter token for booking listings. CURRENT/PAST/FUTURE classify
// by the booking window against the moment of the call; WAITING/REJECTED
// select by status regardless of the window. The views are independent, not
// a partition: a rejected booking whose window covers now appears in both
// REJECTED and CURRENT.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState validates a state token. Matching is case-sensitive.
func ParseState(token string) (State, error) {
	switch s := State(token); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", apperror.New(http.StatusBadRequest, "Unknown state: "+token)
	}
}

// Booking is a request to use an item for a time window. ItemName,
// ItemOwnerID and BookerName are denormalized via joins on read.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	Status      Status
}

// Role selects which side of a booking the viewer is on.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)

// Filter drives the time-windowed booking listing.
type Filter struct {
	ViewerID int64
	Role     Role
	State    State
	Now      time.Time
	Limit    int
	Offset   int
}

// NearestBookings holds the most recently concluded and the soonest
// upcoming booking of an item. Either side may be nil.
type NearestBookings struct {
	Last *Booking
	Next *Booking
}

// Nearest resolves the last and next booking relative to now. Last is the
// booking with the greatest end among those already over; next the one with
// the smallest start among those not yet begun.
func Nearest(bookings []*Booking, now time.Time) NearestBookings {
	var nearest NearestBookings
	for _, b := range bookings {
		if b.End.Before(now) {
			if nearest.Last == nil || b.End.After(nearest.Last.End) {
				nearest.Last = b
			}
		}
		if b.Start.After(now) {
			if nearest.Next == nil || b.Start.Before(nearest.Next.Start) {
				nearest.Next = b
			}
		}
	}
	return nearest
}
