package request

import (
	"strconv"

	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalidUUIDParam = errs.BadRequest("invalid id in query")

// PageFromQuery reads page, limit, sortBy and sortOrder. Absent values keep
// their defaults; present values must be positive integers.
func PageFromQuery(c *gin.Context) (queries.PageRequest, error) {
	page, err := positiveIntQuery(c, "page", queries.ErrInvalidPage)
	if err != nil {
		return queries.PageRequest{}, err
	}
	limit, err := positiveIntQuery(c, "limit", queries.ErrInvalidLimit)
	if err != nil {
		return queries.PageRequest{}, err
	}
	return queries.PageRequest{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}, nil
}

func positiveIntQuery(c *gin.Context, key string, invalid error) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, invalid
	}
	return v, nil
}

func uuidQuery(c *gin.Context, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidUUIDParam, key)
	}
	return &id, nil
}

func CashDrawerFilterFromQuery(c *gin.Context) (queries.CashDrawerFilter, error) {
	var (
		f   queries.CashDrawerFilter
		err error
	)
	if f.ShiftID, err = uuidQuery(c, "shiftId"); err != nil {
		return f, err
	}
	if f.CollaboratorID, err = uuidQuery(c, "collaboratorId"); err != nil {
		return f, err
	}
	if f.OpenedBy, err = uuidQuery(c, "openedBy"); err != nil {
		return f, err
	}
	if f.ClosedBy, err = uuidQuery(c, "closedBy"); err != nil {
		return f, err
	}
	if f.CreatedDate, err = queries.ParseCreatedDate(c.Query("createdDate")); err != nil {
		return f, err
	}
	f.Status = c.Query("status")
	return f, nil
}

func CashTransactionFilterFromQuery(c *gin.Context) (queries.CashTransactionFilter, error) {
	var (
		f   queries.CashTransactionFilter
		err error
	)
	if f.CashDrawerID, err = uuidQuery(c, "cashDrawerId"); err != nil {
		return f, err
	}
	if f.OrderID, err = uuidQuery(c, "orderId"); err != nil {
		return f, err
	}
	f.Type = c.Query("type")
	f.Status = c.Query("status")
	return f, nil
}

func DrawerHistoryFilterFromQuery(c *gin.Context) (queries.DrawerHistoryFilter, error) {
	var (
		f   queries.DrawerHistoryFilter
		err error
	)
	if f.CashDrawerID, err = uuidQuery(c, "cashDrawerId"); err != nil {
		return f, err
	}
	if f.OpenedBy, err = uuidQuery(c, "openedBy"); err != nil {
		return f, err
	}
	if f.ClosedBy, err = uuidQuery(c, "closedBy"); err != nil {
		return f, err
	}
	if f.CreatedDate, err = queries.ParseCreatedDate(c.Query("createdDate")); err != nil {
		return f, err
	}
	f.Status = c.Query("status")
	return f, nil
}
