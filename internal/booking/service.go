package booking

import (
	"context"
	"time"

	"github.com/shareit/backend/internal/item"
	pagination "github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/user"
)

type CreateRequest struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

// Service defines business logic for the booking lifecycle.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error)
	Get(ctx context.Context, viewerID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, stateToken string, page pagination.ListParams) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, stateToken string, page pagination.ListParams) ([]*Booking, error)

	// ListByItem and ListByItems feed the nearest-booking enrichment of
	// item views.
	ListByItem(ctx context.Context, itemID int64) ([]*Booking, error)
	ListByItems(ctx context.Context, itemIDs []int64) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service

	now func() time.Time
}

func NewService(repo Repository, userService user.Service, itemService item.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	booker, err := s.userService.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}

	i, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	// Self-booking is reported as item-not-found so the response does not
	// reveal who owns the item.
	if i.OwnerID == req.BookerID {
		return nil, item.ErrNotFound
	}
	if !i.Available {
		return nil, ErrItemUnavailable
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		ItemID:      i.ID,
		ItemName:    i.Name,
		ItemOwnerID: i.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		Status:      StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Only the item's owner may decide; everyone else sees not-found.
	if b.ItemOwnerID != ownerID {
		return nil, ErrNotFound
	}
	if b.Status != StatusWaiting {
		return nil, ErrStatusAlreadyChanged
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	// Conditional update: a concurrent approval that got there first leaves
	// zero rows to change.
	changed, err := s.repo.SetStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrStatusAlreadyChanged
	}

	b.Status = status
	return b, nil
}

func (s *service) Get(ctx context.Context, viewerID, bookingID int64) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Visible to the booker and the item's owner only.
	if b.BookerID != viewerID && b.ItemOwnerID != viewerID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, bookerID int64, stateToken string, page pagination.ListParams) ([]*Booking, error) {
	return s.list(ctx, bookerID, RoleBooker, stateToken, page)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, stateToken string, page pagination.ListParams) ([]*Booking, error) {
	return s.list(ctx, ownerID, RoleOwner, stateToken, page)
}

func (s *service) list(ctx context.Context, viewerID int64, role Role, stateToken string, page pagination.ListParams) ([]*Booking, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	state, err := ParseState(stateToken)
	if err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	filter := Filter{
		ViewerID: viewerID,
		Role:     role,
		State:    state,
		Now:      s.now(),
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListByItem(ctx context.Context, itemID int64) ([]*Booking, error) {
	return s.repo.ListByItemID(ctx, itemID)
}

func (s *service) ListByItems(ctx context.Context, itemIDs []int64) ([]*Booking, error) {
	return s.repo.ListByItemIDs(ctx, itemIDs)
}
