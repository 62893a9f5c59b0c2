package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit/backend/internal/pkg/apperror"
)

var (
	ErrInvalidFrom = apperror.New(http.StatusBadRequest, "from must be zero or positive")
	ErrInvalidSize = apperror.New(http.StatusBadRequest, "size must be positive")
)

// ListParams holds the offset-style pagination parameters shared by all
// list endpoints: `from` is the index of the first wanted row, `size` the
// page length.
type ListParams struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

// Validate checks the pagination bounds.
func (p ListParams) Validate() error {
	if p.From < 0 {
		return ErrInvalidFrom
	}
	if p.Size <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// Offset translates `from` into a page-aligned SQL offset. The page index
// is from/size with truncated division, so a `from` that lands mid-page
// snaps back to that page's first row.
func (p ListParams) Offset() int {
	return (p.From / p.Size) * p.Size
}

// Limit returns the page length as required by the SQL builder.
func (p ListParams) Limit() int {
	return p.Size
}

// PathID parses the named path parameter as a positive integer identifier.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.New(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
