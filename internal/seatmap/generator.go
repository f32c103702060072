// Package seatmap builds the visual seat grid for a flight. The booked
// subset is a simulation drawn from an injectable random source and has no
// relation to upstream inventory.
package seatmap

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
)

const (
	DefaultRows         = 15
	DefaultBlockedDraws = 18
)

var (
	ErrInvalidSeatID = errors.New("invalid seat id")
	ErrUnknownSeat   = errors.New("seat is not on this aircraft")
	ErrSeatBooked    = errors.New("seat is already booked")
)

// Layout describes the cabin grid. Window and aisle columns are subsets of
// Columns.
type Layout struct {
	Rows          int
	Columns       []string
	WindowColumns []string
	AisleColumns  []string
	BlockedDraws  int
}

func DefaultLayout() Layout {
	return Layout{
		Rows:          DefaultRows,
		Columns:       []string{"A", "B", "C", "D", "E", "F"},
		WindowColumns: []string{"A", "F"},
		AisleColumns:  []string{"C", "D"},
		BlockedDraws:  DefaultBlockedDraws,
	}
}

// Source is the subset of *rand.Rand the generator draws from.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns the deterministic source used for a seat map seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed picks a non-zero seed for a fresh page load.
func NewSeed() int64 {
	for {
		if seed := rand.Int63(); seed != 0 {
			return seed
		}
	}
}

type Seat struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Column string `json:"column"`
	Window bool   `json:"is_window"`
	Aisle  bool   `json:"is_aisle"`
	Booked bool   `json:"is_booked"`
}

func (s Seat) Position() fare.SeatPosition {
	switch {
	case s.Window:
		return fare.PositionWindow
	case s.Aisle:
		return fare.PositionAisle
	default:
		return fare.PositionOther
	}
}

// Map is a generated seat grid. Rows are ordered front to back and seats
// within a row follow Layout.Columns.
type Map struct {
	Layout Layout
	Rows   [][]Seat
	booked map[string]bool
}

// Generate draws Layout.BlockedDraws (row, column) pairs with replacement.
// Duplicate draws simply leave fewer seats blocked.
func Generate(layout Layout, src Source) *Map {
	m := &Map{
		Layout: layout,
		Rows:   make([][]Seat, 0, layout.Rows),
		booked: make(map[string]bool, layout.BlockedDraws),
	}
	if layout.Rows > 0 && len(layout.Columns) > 0 {
		for i := 0; i < layout.BlockedDraws; i++ {
			row := src.Intn(layout.Rows) + 1
			col := layout.Columns[src.Intn(len(layout.Columns))]
			m.booked[SeatID(col, row)] = true
		}
	}

	window := toSet(layout.WindowColumns)
	aisle := toSet(layout.AisleColumns)
	for row := 1; row <= layout.Rows; row++ {
		seats := make([]Seat, 0, len(layout.Columns))
		for _, col := range layout.Columns {
			id := SeatID(col, row)
			seats = append(seats, Seat{
				ID:     id,
				Row:    row,
				Column: col,
				Window: window[col],
				Aisle:  aisle[col],
				Booked: m.booked[id],
			})
		}
		m.Rows = append(m.Rows, seats)
	}
	return m
}

// GenerateSeeded regenerates the same map for the same seed.
func GenerateSeeded(layout Layout, seed int64) *Map {
	return Generate(layout, NewSeededSource(seed))
}

func (m *Map) Lookup(id string) (Seat, error) {
	col, row, err := ParseSeatID(id)
	if err != nil {
		return Seat{}, err
	}
	if row > len(m.Rows) {
		return Seat{}, fmt.Errorf("%w: %s", ErrUnknownSeat, id)
	}
	for _, s := range m.Rows[row-1] {
		if s.Column == col {
			return s, nil
		}
	}
	return Seat{}, fmt.Errorf("%w: %s", ErrUnknownSeat, id)
}

func (m *Map) IsBooked(id string) bool {
	return m.booked[strings.ToUpper(strings.TrimSpace(id))]
}

// BookedSeats returns the distinct blocked seat ids in grid order.
func (m *Map) BookedSeats() []string {
	out := make([]string, 0, len(m.booked))
	for id := range m.booked {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, ri, _ := ParseSeatID(out[i])
		cj, rj, _ := ParseSeatID(out[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return out
}

func (m *Map) Capacity() int {
	return m.Layout.Rows * len(m.Layout.Columns)
}

func SeatID(col string, row int) string {
	return col + strconv.Itoa(row)
}

// ParseSeatID splits "C12" into ("C", 12). Lower-case letters are accepted.
func ParseSeatID(id string) (string, int, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) < 2 || id[0] < 'A' || id[0] > 'Z' {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	row, err := strconv.Atoi(id[1:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	return id[:1], row, nil
}

// SeatRow extracts the numeric part submitted to the booking API as seat_no.
func SeatRow(id string) (int, bool) {
	_, row, err := ParseSeatID(id)
	return row, err == nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
