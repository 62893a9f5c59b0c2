package http

import (
	"time"

	itemHttp "github.com/shareit/backend/internal/item/http"
	"github.com/shareit/backend/internal/request"
)

type RequestResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

func NewRequestResponse(r *request.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
	}
}

// RequestWithItemsResponse adds the items offered in answer to the request.
type RequestWithItemsResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}
