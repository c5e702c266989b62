package api

import (
	"cashdrawer-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.BadRequest("invalid id")

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// bindError classifies JSON binding failures, unknown fields included, as bad
// requests.
func bindError(err error) error {
	return errs.Class(errs.Wrap(err, "invalid request body"), errs.ErrBadRequest)
}
