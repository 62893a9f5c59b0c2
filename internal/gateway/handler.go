package gateway

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/booking"
	"github.com/shareit/backend/internal/identity"
	"github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/pkg/response"
)

// Handler validates incoming requests and forwards them to the server.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// forward relays the current request upstream with an optional re-marshalled
// body and writes the upstream reply back verbatim.
func (h *Handler) forward(c *gin.Context, body any) {
	resp, err := h.client.Do(
		c.Request.Context(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.GetHeader(identity.Header),
		body,
	)
	if err != nil {
		log.Printf("forward %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.Status, contentType, resp.Body)
}

// bindAndForward binds the JSON body into dst for validation, then forwards it.
func (h *Handler) bindAndForward(c *gin.Context, dst any) {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	h.forward(c, dst)
}

// checkPagination validates from/size without consuming them.
func checkPagination(c *gin.Context) bool {
	var page request.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return false
	}
	if err := page.Validate(); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// === Users ===

func (h *Handler) CreateUser(c *gin.Context) {
	var body CreateUserRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var body UpdateUserRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) PassUser(c *gin.Context) {
	h.forward(c, nil)
}

// === Items ===

func (h *Handler) CreateItem(c *gin.Context) {
	var body CreateItemRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var body UpdateItemRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var body CreateCommentRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) ListItems(c *gin.Context) {
	if !checkPagination(c) {
		return
	}
	h.forward(c, nil)
}

func (h *Handler) SearchItems(c *gin.Context) {
	if !checkPagination(c) {
		return
	}
	h.forward(c, nil)
}

func (h *Handler) PassItem(c *gin.Context) {
	h.forward(c, nil)
}

// === Requests ===

func (h *Handler) CreateRequest(c *gin.Context) {
	var body CreateRequestRequest
	h.bindAndForward(c, &body)
}

func (h *Handler) ListOtherRequests(c *gin.Context) {
	if !checkPagination(c) {
		return
	}
	h.forward(c, nil)
}

func (h *Handler) PassRequest(c *gin.Context) {
	h.forward(c, nil)
}

// === Bookings ===

func (h *Handler) CreateBooking(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, &body)
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved must be true or false"})
		return
	}
	h.forward(c, nil)
}

func (h *Handler) ListBookings(c *gin.Context) {
	// The state token is rejected at the edge so garbage never reaches the
	// server.
	if state := c.DefaultQuery("state", "ALL"); state != "" {
		if _, err := booking.ParseState(state); err != nil {
			response.Error(c, err)
			return
		}
	}
	if !checkPagination(c) {
		return
	}
	h.forward(c, nil)
}

func (h *Handler) PassBooking(c *gin.Context) {
	h.forward(c, nil)
}
