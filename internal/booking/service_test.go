package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/backend/internal/item"
	pagination "github.com/shareit/backend/internal/pkg/request"
	"github.com/shareit/backend/internal/user"
)

type memoryRepository struct {
	bookings   map[int64]*Booking
	nextID     int64
	lastFilter Filter
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{bookings: map[int64]*Booking{}, nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = b
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Booking, error) {
	r.lastFilter = filter
	return nil, nil
}

func (r *memoryRepository) ListByItemID(_ context.Context, itemID int64) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.ItemID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepository) ListByItemIDs(_ context.Context, itemIDs []int64) ([]*Booking, error) {
	var out []*Booking
	for _, id := range itemIDs {
		bs, _ := r.ListByItemID(context.Background(), id)
		out = append(out, bs...)
	}
	return out, nil
}

func (r *memoryRepository) SetStatusIfWaiting(_ context.Context, id int64, status Status) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != StatusWaiting {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (r *memoryRepository) HasCompletedBooking(_ context.Context, itemID, bookerID int64, at time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID && b.End.Before(at) {
			return true, nil
		}
	}
	return false, nil
}

type stubUsers struct {
	user.Service
	users map[int64]*user.User
}

func (s stubUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type stubItems struct {
	item.Service
	items map[int64]*item.Item
}

func (s stubItems) GetByID(_ context.Context, id int64) (*item.Item, error) {
	i, ok := s.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}
	return i, nil
}

func newTestService(repo Repository, users stubUsers, items stubItems, now time.Time) *service {
	return &service{
		repo:        repo,
		userService: users,
		itemService: items,
		now:         func() time.Time { return now },
	}
}

func testFixtures() (stubUsers, stubItems) {
	users := stubUsers{users: map[int64]*user.User{
		1: {ID: 1, Name: "Alice", Email: "alice@example.com"},
		2: {ID: 2, Name: "Bob", Email: "bob@example.com"},
	}}
	items := stubItems{items: map[int64]*item.Item{
		10: {ID: 10, Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: 1},
		11: {ID: 11, Name: "Saw", Description: "Hand saw", Available: false, OwnerID: 1},
	}}
	return users, items
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	users, items := testFixtures()

	t.Run("creates a waiting booking with denormalized names", func(t *testing.T) {
		svc := newTestService(newMemoryRepository(), users, items, now)

		b, err := svc.Create(ctx, CreateRequest{
			BookerID: 2,
			ItemID:   10,
			Start:    now.Add(time.Hour),
			End:      now.Add(2 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, StatusWaiting, b.Status)
		assert.Equal(t, "Drill", b.ItemName)
		assert.Equal(t, "Bob", b.BookerName)
		assert.Equal(t, int64(1), b.ItemOwnerID)
		assert.NotZero(t, b.ID)
	})

	t.Run("rejects a window that is not well ordered", func(t *testing.T) {
		svc := newTestService(newMemoryRepository(), users, items, now)

		_, err := svc.Create(ctx, CreateRequest{
			BookerID: 2,
			ItemID:   10,
			Start:    now.Add(2 * time.Hour),
			End:      now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(ctx, CreateRequest{
			BookerID: 2,
			ItemID:   10,
			Start:    now.Add(time.Hour),
			End:      now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange, "zero-length window should be rejected")
	})

	t.Run("owner booking own item looks like a missing item", func(t *testing.T) {
		svc := newTestService(newMemoryRepository(), users, items, now)

		_, err := svc.Create(ctx, CreateRequest{
			BookerID: 1,
			ItemID:   10,
			Start:    now.Add(time.Hour),
			End:      now.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, item.ErrNotFound)
	})

	t.Run("unavailable item is rejected", func(t *testing.T) {
		svc := newTestService(newMemoryRepository(), users, items, now)

		_, err := svc.Create(ctx, CreateRequest{
			BookerID: 2,
			ItemID:   11,
			Start:    now.Add(time.Hour),
			End:      now.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("unknown booker is rejected", func(t *testing.T) {
		svc := newTestService(newMemoryRepository(), users, items, now)

		_, err := svc.Create(ctx, CreateRequest{
			BookerID: 99,
			ItemID:   10,
			Start:    now.Add(time.Hour),
			End:      now.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestServiceApprove(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	users, items := testFixtures()

	create := func(t *testing.T, svc *service) *Booking {
		t.Helper()
		b, err := svc.Create(ctx, CreateRequest{
			BookerID: 2,
			ItemID:   10,
			Start:    now.Add(time.Hour),
			End:      now.Add(2 * time.Hour),
		})
		require.NoError(t, err)
		return b
	}

	t.Run("owner approves a waiting booking", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)
		b := create(t, svc)

		approved, err := svc.Approve(ctx, 1, b.ID, true)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, approved.Status)
	})

	t.Run("owner rejects a waiting booking", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)
		b := create(t, svc)

		rejected, err := svc.Approve(ctx, 1, b.ID, false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, rejected.Status)
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)
		b := create(t, svc)

		_, err := svc.Approve(ctx, 2, b.ID, true)
		assert.ErrorIs(t, err, ErrNotFound, "the booker must not be able to decide")
	})

	t.Run("a second decision conflicts", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)
		b := create(t, svc)

		_, err := svc.Approve(ctx, 1, b.ID, true)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, 1, b.ID, false)
		assert.ErrorIs(t, err, ErrStatusAlreadyChanged)
	})

	t.Run("losing a concurrent decision conflicts", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)
		b := create(t, svc)

		// Another request flips the status between the read and the update.
		repo.bookings[b.ID].Status = StatusRejected

		_, err := svc.Approve(ctx, 1, b.ID, true)
		assert.ErrorIs(t, err, ErrStatusAlreadyChanged)
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	users, items := testFixtures()

	repo := newMemoryRepository()
	svc := newTestService(repo, users, items, now)

	b, err := svc.Create(ctx, CreateRequest{
		BookerID: 2,
		ItemID:   10,
		Start:    now.Add(time.Hour),
		End:      now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	t.Run("booker can read", func(t *testing.T) {
		got, err := svc.Get(ctx, 2, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(ctx, 1, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		strangers := stubUsers{users: map[int64]*user.User{
			1: users.users[1], 2: users.users[2],
			3: {ID: 3, Name: "Carol", Email: "carol@example.com"},
		}}
		svc := newTestService(repo, strangers, items, now)

		_, err := svc.Get(ctx, 3, b.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	users, items := testFixtures()

	t.Run("passes role, state and page through to storage", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)

		_, err := svc.ListByOwner(ctx, 1, "WAITING", pagination.ListParams{From: 7, Size: 3})
		require.NoError(t, err)

		assert.Equal(t, RoleOwner, repo.lastFilter.Role)
		assert.Equal(t, StateWaiting, repo.lastFilter.State)
		assert.Equal(t, int64(1), repo.lastFilter.ViewerID)
		assert.Equal(t, 3, repo.lastFilter.Limit)
		assert.Equal(t, 6, repo.lastFilter.Offset, "from snaps back to the page boundary")
		assert.Equal(t, now, repo.lastFilter.Now)
	})

	t.Run("unknown state token fails before storage", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)

		_, err := svc.ListByBooker(ctx, 2, "unsupported", pagination.ListParams{From: 0, Size: 10})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown state: unsupported")
	})

	t.Run("unknown viewer fails", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)

		_, err := svc.ListByBooker(ctx, 99, "ALL", pagination.ListParams{From: 0, Size: 10})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("bad pagination fails", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := newTestService(repo, users, items, now)

		_, err := svc.ListByBooker(ctx, 2, "ALL", pagination.ListParams{From: -1, Size: 10})
		assert.ErrorIs(t, err, pagination.ErrInvalidFrom)

		_, err = svc.ListByBooker(ctx, 2, "ALL", pagination.ListParams{From: 0, Size: 0})
		assert.ErrorIs(t, err, pagination.ErrInvalidSize)
	})
}
