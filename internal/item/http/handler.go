package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/booking"
	"github.com/shareit/backend/internal/identity"
	"github.com/shareit/backend/internal/item"
	"github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/pkg/response"
)

type Handler struct {
	service        item.Service
	bookingService booking.Service
}

func NewHandler(service item.Service, bookingService booking.Service) *Handler {
	return &Handler{
		service:        service,
		bookingService: bookingService,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	i, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     identity.UserID(c),
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(i))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.PathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	i, err := h.service.Update(c.Request.Context(), identity.UserID(c), id, item.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(i))
}

// Get returns the item with its comments. When the viewer owns the item the
// view also carries the nearest (last and next) bookings.
func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	i, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.service.Comments(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	var nearest booking.NearestBookings
	if i.OwnerID == identity.UserID(c) {
		bookings, err := h.bookingService.ListByItem(ctx, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		nearest = booking.Nearest(bookings, time.Now())
	}

	c.JSON(http.StatusOK, NewItemDetailResponse(i, nearest, comments))
}

// List returns the viewer's own items, each with comments and nearest
// bookings. Bookings and comments are fetched in one query per kind and
// grouped in memory.
func (h *Handler) List(c *gin.Context) {
	var page request.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	items, err := h.service.ListByOwner(ctx, identity.UserID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	itemIDs := make([]int64, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}

	bookings, err := h.bookingService.ListByItems(ctx, itemIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingsByItem := make(map[int64][]*booking.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}

	commentsByItem, err := h.service.CommentsForItems(ctx, itemIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now()
	resp := make([]ItemDetailResponse, len(items))
	for i, it := range items {
		nearest := booking.Nearest(bookingsByItem[it.ID], now)
		resp[i] = NewItemDetailResponse(it, nearest, commentsByItem[it.ID])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Search(c *gin.Context) {
	var page request.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := request.PathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), identity.UserID(c), id, body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(comment))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID(c), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusOK)
}
