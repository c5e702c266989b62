//go:build unit

package queries_test

import (
	"testing"
	"time"

	"cashdrawer-api/internal/pkg/errs"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Resolve(t *testing.T) {
	keys := []string{queries.SortCreatedAt, "amount"}

	tests := []struct {
		name    string
		req     queries.PageRequest
		want    queries.ListParams
		wantErr error
	}{
		{
			name: "defaults",
			req:  queries.PageRequest{},
			want: queries.ListParams{Page: 1, Limit: 10, Offset: 0, SortKey: "created_at", Desc: true},
		},
		{
			name: "third page ascending by amount",
			req:  queries.PageRequest{Page: 3, Limit: 20, SortBy: "amount", SortOrder: "asc"},
			want: queries.ListParams{Page: 3, Limit: 20, Offset: 40, SortKey: "amount", Desc: false},
		},
		{
			name: "limit upper bound",
			req:  queries.PageRequest{Limit: 100},
			want: queries.ListParams{Page: 1, Limit: 100, Offset: 0, SortKey: "created_at", Desc: true},
		},
		{name: "limit above bound", req: queries.PageRequest{Limit: 101}, wantErr: queries.ErrInvalidLimit},
		{name: "negative page", req: queries.PageRequest{Page: -1}, wantErr: queries.ErrInvalidPage},
		{name: "unknown sort column", req: queries.PageRequest{SortBy: "notes"}, wantErr: queries.ErrInvalidSortBy},
		{name: "unknown sort order", req: queries.PageRequest{SortOrder: "UP"}, wantErr: queries.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Resolve(keys)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.True(t, errs.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name   string
		params queries.ListParams
		total  int64
		want   queries.PageMeta
	}{
		{
			name:   "empty result",
			params: queries.ListParams{Page: 1, Limit: 10},
			total:  0,
			want:   queries.PageMeta{Page: 1, Limit: 10, Total: 0, TotalPages: 0},
		},
		{
			name:   "middle page",
			params: queries.ListParams{Page: 2, Limit: 10, Offset: 10},
			total:  25,
			want:   queries.PageMeta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:   "last page exactly full",
			params: queries.ListParams{Page: 3, Limit: 5, Offset: 10},
			total:  15,
			want:   queries.PageMeta{Page: 3, Limit: 5, Total: 15, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:   "page past the end",
			params: queries.ListParams{Page: 9, Limit: 10, Offset: 80},
			total:  3,
			want:   queries.PageMeta{Page: 9, Limit: 10, Total: 3, TotalPages: 1, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.NewPageMeta(tt.params, tt.total))
		})
	}
}

func TestParseCreatedDate(t *testing.T) {
	got, err := queries.ParseCreatedDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *got)

	got, err = queries.ParseCreatedDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = queries.ParseCreatedDate("2025/03/14")
	assert.True(t, errs.Is(err, queries.ErrInvalidDate))
}
