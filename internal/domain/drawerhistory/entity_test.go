//go:build unit

package drawerhistory_test

import (
	"testing"
	"time"

	"cashdrawer-api/internal/domain/drawerhistory"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/internal/domain/record"
	"cashdrawer-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	p := drawerhistory.NewParams{
		DrawerID:       uuid.New(),
		OpeningBalance: money.MustParse("100.00"),
		ClosingBalance: money.MustParse("140.50"),
		OpenedBy:       uuid.New(),
		ClosedBy:       uuid.New(),
	}

	e := drawerhistory.New(p, now)

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.Equal(t, p.DrawerID, e.DrawerID())
	assert.Equal(t, "140.50", e.ClosingBalance().String())
	assert.Equal(t, record.StatusActive, e.Status())
	assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
}

func TestCorrectActors(t *testing.T) {
	t.Run("changes only the given actor", func(t *testing.T) {
		e := builder.NewDrawerHistoryBuilder().BuildDomain()
		before := e.Snapshot()
		closedBy := uuid.New()

		require.NoError(t, e.CorrectActors(nil, &closedBy, now.Add(time.Minute)))

		assert.Equal(t, before.OpenedBy, e.OpenedBy())
		assert.Equal(t, closedBy, e.ClosedBy())
		assert.Equal(t, before.OpeningBalance, e.OpeningBalance())
		assert.Equal(t, before.ClosingBalance, e.ClosingBalance())
	})

	t.Run("deleted entry", func(t *testing.T) {
		e := builder.NewDrawerHistoryBuilder().With(func(b *builder.DrawerHistoryBuilder) {
			b.Status = record.StatusDeleted
		}).BuildDomain()
		openedBy := uuid.New()

		require.ErrorIs(t, e.CorrectActors(&openedBy, nil, now), drawerhistory.ErrEntryDeleted)
	})
}

func TestMarkDeleted(t *testing.T) {
	e := builder.NewDrawerHistoryBuilder().BuildDomain()

	require.NoError(t, e.MarkDeleted(now))
	assert.Equal(t, record.StatusDeleted, e.Status())
	require.ErrorIs(t, e.MarkDeleted(now), drawerhistory.ErrAlreadyDeleted)
}
