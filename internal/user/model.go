package user

import (
	"net/http"

	"github.com/shareit/backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
	ErrEmailRequired    = apperror.New(http.StatusBadRequest, "email is required")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "name is required")
	ErrInUse            = apperror.New(http.StatusConflict, "user is referenced by bookings, items or comments")
)

// User represents a marketplace participant: an owner of items and/or a
// booker of other users' items.
type User struct {
	ID    int64
	Name  string
	Email string
}
