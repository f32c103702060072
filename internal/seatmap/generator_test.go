package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
)

// scripted replays fixed draws, cycling when exhausted.
type scripted struct {
	draws []int
	i     int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.i%len(s.draws)] % n
	s.i++
	return v
}

func TestGenerate_Grid(t *testing.T) {
	m := Generate(DefaultLayout(), &scripted{draws: []int{0}})

	require.Len(t, m.Rows, 15)
	for i, row := range m.Rows {
		require.Len(t, row, 6)
		for _, s := range row {
			assert.Equal(t, i+1, s.Row)
			assert.Equal(t, s.Column == "A" || s.Column == "F", s.Window, s.ID)
			assert.Equal(t, s.Column == "C" || s.Column == "D", s.Aisle, s.ID)
		}
	}
	assert.Equal(t, 90, m.Capacity())
}

func TestGenerate_ScriptedBlockedSet(t *testing.T) {
	// pairs of (row index, column index)
	draws := []int{0, 0, 11, 2, 14, 5, 0, 0}
	layout := DefaultLayout()
	layout.BlockedDraws = 4

	m := Generate(layout, &scripted{draws: draws})

	assert.Equal(t, []string{"A1", "C12", "F15"}, m.BookedSeats())
	assert.True(t, m.IsBooked("a1"))
	assert.False(t, m.IsBooked("B1"))
}

func TestGenerate_DuplicateDrawsBlockFewerSeats(t *testing.T) {
	m := Generate(DefaultLayout(), &scripted{draws: []int{3, 1}})
	assert.Equal(t, []string{"B4"}, m.BookedSeats())
}

func TestGenerateSeeded_Deterministic(t *testing.T) {
	a := GenerateSeeded(DefaultLayout(), 42)
	b := GenerateSeeded(DefaultLayout(), 42)

	assert.Equal(t, a.BookedSeats(), b.BookedSeats())
	assert.NotEmpty(t, a.BookedSeats())
	assert.LessOrEqual(t, len(a.BookedSeats()), DefaultBlockedDraws)
}

func TestLookup(t *testing.T) {
	m := Generate(DefaultLayout(), &scripted{draws: []int{0}})

	s, err := m.Lookup("d7")
	require.NoError(t, err)
	assert.Equal(t, "D7", s.ID)
	assert.Equal(t, fare.PositionAisle, s.Position())

	_, err = m.Lookup("G1")
	assert.ErrorIs(t, err, ErrUnknownSeat)

	_, err = m.Lookup("A16")
	assert.ErrorIs(t, err, ErrUnknownSeat)

	_, err = m.Lookup("12")
	assert.ErrorIs(t, err, ErrInvalidSeatID)
}

func TestSeatRow(t *testing.T) {
	row, ok := SeatRow("C12")
	assert.True(t, ok)
	assert.Equal(t, 12, row)

	_, ok = SeatRow("C0")
	assert.False(t, ok)
}
