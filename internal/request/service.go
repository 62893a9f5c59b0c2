package request

import (
	"context"
	"strings"
	"time"

	pagination "github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/user"
)

type CreateRequest struct {
	RequestorID int64
	Description string
}

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ItemRequest, error)
	// GetByID fetches a request without any viewer check; used by the item
	// module to resolve the request an item answers.
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	GetForViewer(ctx context.Context, viewerID, id int64) (*ItemRequest, error)
	ListOwn(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, viewerID int64, page pagination.ListParams) ([]*ItemRequest, error)
}

type service struct {
	repo        Repository
	userService user.Service

	now func() time.Time
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, req.RequestorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	itemRequest := &ItemRequest{
		Description: req.Description,
		RequestorID: req.RequestorID,
		Created:     s.now(),
	}

	if err := s.repo.Create(ctx, itemRequest); err != nil {
		return nil, err
	}
	return itemRequest, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetForViewer(ctx context.Context, viewerID, id int64) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}
	return s.repo.ListByRequestor(ctx, requestorID)
}

func (s *service) ListOthers(ctx context.Context, viewerID int64, page pagination.ListParams) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListOthers(ctx, viewerID, page.Limit(), page.Offset())
}
