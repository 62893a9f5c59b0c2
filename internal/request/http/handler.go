package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/identity"
	"github.com/shareit/backend/internal/item"
	itemHttp "github.com/shareit/backend/internal/item/http"
	pagination "github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/pkg/response"
	"github.com/shareit/backend/internal/request"
)

type Handler struct {
	service     request.Service
	itemService item.Service
}

func NewHandler(service request.Service, itemService item.Service) *Handler {
	return &Handler{
		service:     service,
		itemService: itemService,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Create(c.Request.Context(), request.CreateRequest{
		RequestorID: identity.UserID(c),
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(r))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := pagination.PathID(c, "requestId")
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	r, err := h.service.GetForViewer(ctx, identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.withItems(ctx, []*request.ItemRequest{r})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp[0])
}

// ListOwn returns the viewer's requests, newest first, with the items
// answering each of them.
func (h *Handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := h.service.ListOwn(ctx, identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.withItems(ctx, requests)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListOthers returns other users' requests, newest first, paginated.
func (h *Handler) ListOthers(c *gin.Context) {
	var page pagination.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	requests, err := h.service.ListOthers(ctx, identity.UserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.withItems(ctx, requests)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// withItems resolves the fulfilling items for a batch of requests with a
// single item query, grouped in memory.
func (h *Handler) withItems(ctx context.Context, requests []*request.ItemRequest) ([]RequestWithItemsResponse, error) {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	items, err := h.itemService.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	itemsByRequest := make(map[int64][]itemHttp.ItemResponse)
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		itemsByRequest[*it.RequestID] = append(itemsByRequest[*it.RequestID], itemHttp.NewItemResponse(it))
	}

	resp := make([]RequestWithItemsResponse, len(requests))
	for i, r := range requests {
		items := itemsByRequest[r.ID]
		if items == nil {
			items = []itemHttp.ItemResponse{}
		}
		resp[i] = RequestWithItemsResponse{
			RequestResponse: NewRequestResponse(r),
			Items:           items,
		}
	}
	return resp, nil
}
