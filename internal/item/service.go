package item

import (
	"context"
	"strings"
	"time"

	pagination "github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/request"
	"github.com/shareit/backend/internal/user"
)

type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	ListByOwner(ctx context.Context, ownerID int64, page pagination.ListParams) ([]*Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
	Search(ctx context.Context, text string, page pagination.ListParams) ([]*Item, error)
	Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error)
	Delete(ctx context.Context, ownerID, itemID int64) error

	AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
	Comments(ctx context.Context, itemID int64) ([]*Comment, error)
	CommentsForItems(ctx context.Context, itemIDs []int64) (map[int64][]*Comment, error)
}

type service struct {
	repo           Repository
	comments       CommentRepository
	userService    user.Service
	requestService request.Service
	history        BookingHistory

	now func() time.Time
}

func NewService(
	repo Repository,
	comments CommentRepository,
	userService user.Service,
	requestService request.Service,
	history BookingHistory,
) Service {
	return &service{
		repo:           repo,
		comments:       comments,
		userService:    userService,
		requestService: requestService,
		history:        history,
		now:            time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if req.RequestID != nil {
		if _, err := s.requestService.GetByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	i := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     req.OwnerID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page pagination.ListParams) ([]*Item, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, ownerID, page.Limit(), page.Offset())
}

func (s *service) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error) {
	return s.repo.ListByRequestIDs(ctx, requestIDs)
}

func (s *service) Search(ctx context.Context, text string, page pagination.ListParams) ([]*Item, error) {
	// A blank query never reaches storage.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, text, page.Limit(), page.Offset())
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, req UpdateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Ownership is reported as not-found so strangers cannot probe for
	// items they do not own.
	if i.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		i.Name = *req.Name
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		i.Description = *req.Description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Delete(ctx context.Context, ownerID, itemID int64) error {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return err
	}

	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if i.OwnerID != ownerID {
		return ErrNotFound
	}

	return s.repo.Delete(ctx, itemID)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommentRequired
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	// Eligibility: some booking of this item by this author must have
	// already ended. The booking status is not consulted.
	ok, err := s.history.HasCompletedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthorised
	}

	c := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}

	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Comments(ctx context.Context, itemID int64) ([]*Comment, error) {
	return s.comments.ListByItemID(ctx, itemID)
}

func (s *service) CommentsForItems(ctx context.Context, itemIDs []int64) (map[int64][]*Comment, error) {
	comments, err := s.comments.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]*Comment, len(itemIDs))
	for _, c := range comments {
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}
	return grouped, nil
}
