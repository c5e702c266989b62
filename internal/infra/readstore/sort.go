package readstore

import (
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/usecase/queries"
)

// toPage maps a validated list request onto SQL. Sort keys missing from
// columns fall back to created_at.
func toPage(p queries.ListParams, columns map[string]string, createdAt string) pgsql.Page {
	column, ok := columns[p.SortKey]
	if !ok {
		column = createdAt
	}
	return pgsql.Page{
		Limit:      int32(p.Limit),  // #nosec G115 -- bounded by queries.MaxLimit
		Offset:     int32(p.Offset), // #nosec G115 -- page * limit stays far below int32
		SortColumn: column,
		Desc:       p.Desc,
	}
}
