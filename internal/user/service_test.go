package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	users  map[int64]*User
	nextID int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: map[int64]*User{}, nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*User, error) {
	var out []*User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a normalized email", func(t *testing.T) {
		svc := NewService(newMemoryRepository())

		u, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "  Alice@Example.COM "})
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("requires name and email", func(t *testing.T) {
		svc := NewService(newMemoryRepository())

		_, err := svc.Create(ctx, CreateRequest{Name: " ", Email: "a@b.com"})
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Create(ctx, CreateRequest{Name: "Alice", Email: "   "})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := NewService(newMemoryRepository())

		_, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "alice@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{Name: "Imposter", Email: "ALICE@example.com"})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed, "case differences in email do not dodge uniqueness")
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc Service) *User {
		t.Helper()
		u, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "alice@example.com"})
		require.NoError(t, err)
		return u
	}

	t.Run("updates fields independently", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		u := seed(t, svc)

		name := "Alicia"
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email, "email survives a name-only update")
	})

	t.Run("rejects a blank replacement email", func(t *testing.T) {
		svc := NewService(newMemoryRepository())
		u := seed(t, svc)

		blank := "  "
		_, err := svc.Update(ctx, u.ID, UpdateRequest{Email: &blank})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		svc := NewService(newMemoryRepository())

		name := "Nobody"
		_, err := svc.Update(ctx, 99, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepository())

	u, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound, "double delete reports not found")
}
