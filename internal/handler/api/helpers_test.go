//go:build unit

package api_test

import (
	"errors"
	"net/http"

	"cashdrawer-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

type usecaseErrorCase struct {
	name           string
	err            error
	expectedStatus int
	expectedMsg    string
}

// fakeAuth stands in for the JWT middleware and pins the caller's merchant.
func fakeAuth(merchantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("collaborator_id", uuid.New())
		c.Set("merchant_id", merchantID)
		c.Next()
	}
}

func usecaseErrorCases() []usecaseErrorCase {
	return []usecaseErrorCase{
		{
			name:           "validation error",
			err:            errs.BadRequest("cash drawer must be OPEN"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "must be OPEN",
		},
		{
			name:           "missing merchant",
			err:            errs.Forbidden("merchant context required"),
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "merchant context required",
		},
		{
			name:           "not found",
			err:            errs.NotFound("cash drawer not found"),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "not found",
		},
		{
			name:           "conflict",
			err:            errs.Conflict("already deleted"),
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already deleted",
		},
		{
			name:           "internal server error",
			err:            errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
	}
}
