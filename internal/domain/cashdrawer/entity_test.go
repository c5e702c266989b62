//go:build unit

package cashdrawer_test

import (
	"testing"
	"time"

	"cashdrawer-api/internal/domain/cashdrawer"
	"cashdrawer-api/internal/domain/money"
	"cashdrawer-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestOpen(t *testing.T) {
	params := cashdrawer.OpenParams{
		MerchantID:     uuid.New(),
		ShiftID:        uuid.New(),
		OpeningBalance: money.MustParse("150.00"),
		OpenedBy:       uuid.New(),
	}

	t.Run("opens with current balance equal to opening balance", func(t *testing.T) {
		d, err := cashdrawer.Open(params, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, cashdrawer.StateOpen, d.State())
		assert.Equal(t, "OPEN", d.Status())
		assert.Equal(t, "150.00", d.CurrentBalance().String())
		assert.Nil(t, d.ClosingBalance())
		assert.Nil(t, d.ClosedBy())
		assert.Equal(t, int64(1), d.Version())
		assert.True(t, d.HoldsActiveSession())
		assert.Equal(t, now, d.CreatedAt())
	})

	t.Run("backfill with closing fields creates a closed drawer", func(t *testing.T) {
		p := params
		closing := money.MustParse("90.00")
		closedBy := uuid.New()
		p.ClosingBalance = &closing
		p.ClosedBy = &closedBy

		d, err := cashdrawer.Open(p, now)
		require.NoError(t, err)

		assert.Equal(t, cashdrawer.StateClose, d.State())
		assert.Equal(t, "90.00", d.CurrentBalance().String())
		require.NotNil(t, d.ClosingBalance())
		assert.Equal(t, "90.00", d.ClosingBalance().String())
		assert.Equal(t, closedBy, *d.ClosedBy())
		assert.False(t, d.HoldsActiveSession())
	})

	t.Run("closing balance without closing collaborator", func(t *testing.T) {
		p := params
		closing := money.MustParse("90.00")
		p.ClosingBalance = &closing

		_, err := cashdrawer.Open(p, now)
		require.ErrorIs(t, err, cashdrawer.ErrPartialClosing)
	})

	t.Run("closing collaborator without closing balance", func(t *testing.T) {
		p := params
		closedBy := uuid.New()
		p.ClosedBy = &closedBy

		_, err := cashdrawer.Open(p, now)
		require.ErrorIs(t, err, cashdrawer.ErrPartialClosing)
	})
}

func TestLifecycle(t *testing.T) {
	actor := uuid.New()

	t.Run("credit then debit", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()

		require.NoError(t, d.Credit(money.MustParse("20.00"), now))
		require.NoError(t, d.Debit(money.MustParse("70.00"), now))
		assert.Equal(t, "50.00", d.CurrentBalance().String())
		assert.Equal(t, "100.00", d.OpeningBalance().String())
	})

	t.Run("debit below zero leaves balance untouched", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()

		err := d.Debit(money.MustParse("100.01"), now)
		require.ErrorIs(t, err, cashdrawer.ErrInsufficientBalance)
		assert.Equal(t, "100.00", d.CurrentBalance().String())
	})

	t.Run("debit to exactly zero", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()

		require.NoError(t, d.Debit(money.MustParse("100.00"), now))
		assert.True(t, d.CurrentBalance().IsZero())
	})

	t.Run("close records closing balance and actor", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().WithBalance("180.00").BuildDomain()

		require.NoError(t, d.Close(actor, now))
		assert.Equal(t, cashdrawer.StateClose, d.State())
		assert.Equal(t, "180.00", d.ClosingBalance().String())
		assert.Equal(t, actor, *d.ClosedBy())
	})

	t.Run("reopen seeds from previous closing balance", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().WithBalance("180.00").Closed(uuid.New()).BuildDomain()

		require.NoError(t, d.Reopen(actor, now))
		assert.Equal(t, cashdrawer.StateOpen, d.State())
		assert.Equal(t, "180.00", d.OpeningBalance().String())
		assert.Equal(t, "180.00", d.CurrentBalance().String())
		assert.Nil(t, d.ClosingBalance())
		assert.Nil(t, d.ClosedBy())
		assert.Equal(t, actor, d.OpenedBy())
	})

	t.Run("pause and unpause", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()

		require.NoError(t, d.Pause(now))
		assert.Equal(t, cashdrawer.StatePause, d.State())
		assert.True(t, d.HoldsActiveSession())
		require.ErrorIs(t, d.Credit(money.MustParse("1.00"), now), cashdrawer.ErrMustBeOpen)
		require.ErrorIs(t, d.Close(actor, now), cashdrawer.ErrMustBeOpen)

		require.NoError(t, d.Unpause(now))
		assert.Equal(t, cashdrawer.StateOpen, d.State())
	})

	t.Run("unpause requires pause", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()
		require.ErrorIs(t, d.Unpause(now), cashdrawer.ErrMustBePaused)
	})

	t.Run("reopen requires close", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()
		require.ErrorIs(t, d.Reopen(actor, now), cashdrawer.ErrMustBeClosed)
	})
}

func TestDeletion(t *testing.T) {
	t.Run("deleted drawer reports DELETED and rejects every transition", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().BuildDomain()
		require.NoError(t, d.MarkDeleted(now))

		assert.Equal(t, cashdrawer.StatusDeleted, d.Status())
		assert.Equal(t, cashdrawer.StateOpen, d.State())
		assert.False(t, d.HoldsActiveSession())
		require.ErrorIs(t, d.Credit(money.MustParse("1.00"), now), cashdrawer.ErrDrawerDeleted)
		require.ErrorIs(t, d.Pause(now), cashdrawer.ErrDrawerDeleted)
		require.ErrorIs(t, d.Reassign(nil, nil, now), cashdrawer.ErrDrawerDeleted)
	})

	t.Run("second delete conflicts", func(t *testing.T) {
		d := builder.NewCashDrawerBuilder().Deleted().BuildDomain()
		require.ErrorIs(t, d.MarkDeleted(now), cashdrawer.ErrAlreadyDeleted)
	})
}

func TestReassign(t *testing.T) {
	d := builder.NewCashDrawerBuilder().BuildDomain()
	before := d.Snapshot()
	shiftID := uuid.New()

	require.NoError(t, d.Reassign(&shiftID, nil, now.Add(time.Hour)))

	assert.Equal(t, shiftID, d.ShiftID())
	assert.Equal(t, before.OpenedBy, d.OpenedBy())
	assert.Equal(t, before.CurrentBalance, d.CurrentBalance())
	assert.Equal(t, before.State, d.State())
	assert.Equal(t, now.Add(time.Hour), d.UpdatedAt())
}

func TestSnapshotIsolation(t *testing.T) {
	d := builder.NewCashDrawerBuilder().Closed(uuid.New()).BuildDomain()
	copied := cashdrawer.Reconstruct(d.Snapshot())

	require.NoError(t, copied.Reopen(uuid.New(), now))

	assert.Equal(t, cashdrawer.StateClose, d.State())
	assert.NotNil(t, d.ClosingBalance())
}
