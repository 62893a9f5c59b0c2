package request

import (
	"net/http"
	"time"

	"github.com/shareit/backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "request not found")
	ErrDescriptionRequired = apperror.New(http.StatusBadRequest, "description is required")
)

// ItemRequest is a wish published by a user looking for an item. Owners may
// later list items that answer it.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}
