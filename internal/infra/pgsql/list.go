package pgsql

import (
	"fmt"
	"strings"
	"time"
)

// Page is the window and order of a list query. SortColumn must come from a
// whitelist owned by the caller of the list method.
type Page struct {
	Limit      int32
	Offset     int32
	SortColumn string
	Desc       bool
}

func (p Page) orderBy(tiebreak string) string {
	dir := "ASC"
	if p.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s %s", p.SortColumn, dir, tiebreak, dir)
}

// where accumulates AND-ed predicates with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends a predicate. Each %d in cond is replaced by the placeholder
// number of the matching argument.
func (w *where) add(cond string, args ...any) {
	nums := make([]any, len(args))
	for i := range args {
		w.args = append(w.args, args[i])
		nums[i] = len(w.args)
	}
	w.conds = append(w.conds, fmt.Sprintf(cond, nums...))
}

func (w *where) addDay(column string, day *time.Time) {
	if day == nil {
		return
	}
	start := day.UTC()
	w.add(column+" >= $%d AND "+column+" < $%d", start, start.AddDate(0, 0, 1))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// window appends LIMIT/OFFSET placeholders and returns the full argument list.
func (w *where) window(p Page) (string, []any) {
	args := append(append([]any{}, w.args...), p.Limit, p.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
