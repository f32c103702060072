package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
)

func newTestMap() *Map {
	layout := DefaultLayout()
	layout.BlockedDraws = 1
	// blocks B2
	return Generate(layout, &scripted{draws: []int{1, 1}})
}

func TestSelection_ToggleIdempotence(t *testing.T) {
	sel := NewSelection(newTestMap(), 1000)

	require.NoError(t, sel.Toggle("A1"))
	seat, ok := sel.Selected()
	require.True(t, ok)
	assert.Equal(t, "A1", seat.ID)

	require.NoError(t, sel.Toggle("A1"))
	_, ok = sel.Selected()
	assert.False(t, ok)

	require.NoError(t, sel.Toggle("A1"))
	require.NoError(t, sel.Toggle("C3"))
	seat, _ = sel.Selected()
	assert.Equal(t, "C3", seat.ID)
}

func TestSelection_BookedNeverSelectable(t *testing.T) {
	m := newTestMap()
	require.True(t, m.IsBooked("B2"))

	sel := NewSelection(m, 1000)
	require.NoError(t, sel.Toggle("A1"))

	assert.ErrorIs(t, sel.Toggle("B2"), ErrSeatBooked)
	assert.ErrorIs(t, sel.Select("B2"), ErrSeatBooked)

	seat, ok := sel.Selected()
	require.True(t, ok)
	assert.Equal(t, "A1", seat.ID)
}

func TestSelection_Quote(t *testing.T) {
	sel := NewSelection(newTestMap(), 1000)

	q := sel.Quote()
	assert.Equal(t, fare.Economy, q.CabinClass)
	assert.Equal(t, 1000.00, q.FinalPrice)
	assert.Empty(t, q.Seat)

	sel.SetClass(fare.Business)
	require.NoError(t, sel.Toggle("A1"))
	q = sel.Quote()
	assert.Equal(t, "A1", q.Seat)
	assert.Equal(t, fare.PositionWindow, q.Position)
	assert.Equal(t, 1760.00, q.FinalPrice)

	require.NoError(t, sel.Select(""))
	assert.Equal(t, 1600.00, sel.Quote().FinalPrice)
}

func TestSelection_EconomyAisle(t *testing.T) {
	sel := NewSelection(newTestMap(), 500)
	require.NoError(t, sel.Toggle("C3"))
	assert.Equal(t, 525.00, sel.Quote().FinalPrice)
}
