package request

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParamsValidate(t *testing.T) {
	assert.NoError(t, ListParams{From: 0, Size: 10}.Validate())
	assert.ErrorIs(t, ListParams{From: -1, Size: 10}.Validate(), ErrInvalidFrom)
	assert.ErrorIs(t, ListParams{From: 0, Size: 0}.Validate(), ErrInvalidSize)
	assert.ErrorIs(t, ListParams{From: 0, Size: -5}.Validate(), ErrInvalidSize)
}

func TestListParamsOffset(t *testing.T) {
	// The offset snaps back to the start of the page containing `from`.
	cases := []struct {
		from, size, offset int
	}{
		{0, 10, 0},
		{10, 10, 10},
		{7, 3, 6},
		{5, 10, 0},
		{9, 3, 9},
	}
	for _, tc := range cases {
		p := ListParams{From: tc.from, Size: tc.size}
		assert.Equal(t, tc.offset, p.Offset(), "from=%d size=%d", tc.from, tc.size)
		assert.Equal(t, tc.size, p.Limit())
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(value string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "itemId", Value: value}}
		return c
	}

	t.Run("parses a positive id", func(t *testing.T) {
		id, err := PathID(newCtx("42"), "itemId")
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("rejects junk and non-positive values", func(t *testing.T) {
		for _, value := range []string{"abc", "", "0", "-3", "1.5"} {
			_, err := PathID(newCtx(value), "itemId")
			assert.Error(t, err, "value %q", value)
		}
	})
}
