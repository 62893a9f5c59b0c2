package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/backend/internal/pkg/apperror"
)

func TestParseState(t *testing.T) {
	t.Run("accepts every known token", func(t *testing.T) {
		for _, token := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			state, err := ParseState(token)
			require.NoError(t, err, "token %q should parse", token)
			assert.Equal(t, State(token), state)
		}
	})

	t.Run("rejects unknown token with the token echoed back", func(t *testing.T) {
		_, err := ParseState("unsupported")
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Unknown state: unsupported", appErr.Message)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		_, err := ParseState("current")
		assert.Error(t, err)
	})
}

func TestNearest(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	window := func(id int64, start, end time.Time) *Booking {
		return &Booking{ID: id, Start: start, End: end, Status: StatusApproved}
	}

	t.Run("picks latest past and earliest future", func(t *testing.T) {
		bookings := []*Booking{
			window(1, now.Add(-20*day), now.Add(-10*day)),
			window(2, now.Add(-5*day), now.Add(-2*day)),
			window(3, now.Add(3*day), now.Add(4*day)),
			window(4, now.Add(10*day), now.Add(12*day)),
		}

		nearest := Nearest(bookings, now)
		require.NotNil(t, nearest.Last)
		require.NotNil(t, nearest.Next)
		assert.Equal(t, int64(2), nearest.Last.ID, "last should be the booking that ended most recently")
		assert.Equal(t, int64(3), nearest.Next.ID, "next should be the booking that starts soonest")
	})

	t.Run("a booking covering now is neither last nor next", func(t *testing.T) {
		bookings := []*Booking{
			window(1, now.Add(-day), now.Add(day)),
		}

		nearest := Nearest(bookings, now)
		assert.Nil(t, nearest.Last)
		assert.Nil(t, nearest.Next)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		nearest := Nearest(nil, now)
		assert.Nil(t, nearest.Last)
		assert.Nil(t, nearest.Next)
	})

	t.Run("only past bookings", func(t *testing.T) {
		bookings := []*Booking{
			window(1, now.Add(-10*day), now.Add(-8*day)),
			window(2, now.Add(-4*day), now.Add(-3*day)),
		}

		nearest := Nearest(bookings, now)
		require.NotNil(t, nearest.Last)
		assert.Equal(t, int64(2), nearest.Last.ID)
		assert.Nil(t, nearest.Next)
	})
}
