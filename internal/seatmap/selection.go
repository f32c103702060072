package seatmap

import (
	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
)

// Selection is the seat page state: one optional seat and a cabin class
// over a generated map. It is rebuilt on every request and never stored.
type Selection struct {
	m     *Map
	base  float64
	class fare.CabinClass
	seat  string
}

func NewSelection(m *Map, basePrice float64) *Selection {
	return &Selection{m: m, base: basePrice, class: fare.Economy}
}

// Toggle selects id, or clears the selection when id is already selected.
// Booked seats are rejected and leave the selection untouched.
func (s *Selection) Toggle(id string) error {
	seat, err := s.m.Lookup(id)
	if err != nil {
		return err
	}
	if seat.Booked {
		return ErrSeatBooked
	}
	if s.seat == seat.ID {
		s.seat = ""
		return nil
	}
	s.seat = seat.ID
	return nil
}

// Select sets the seat without toggle semantics. An empty id clears it.
func (s *Selection) Select(id string) error {
	if id == "" {
		s.seat = ""
		return nil
	}
	seat, err := s.m.Lookup(id)
	if err != nil {
		return err
	}
	if seat.Booked {
		return ErrSeatBooked
	}
	s.seat = seat.ID
	return nil
}

func (s *Selection) SetClass(c fare.CabinClass) {
	s.class = c
}

func (s *Selection) Class() fare.CabinClass { return s.class }

func (s *Selection) Selected() (Seat, bool) {
	if s.seat == "" {
		return Seat{}, false
	}
	seat, err := s.m.Lookup(s.seat)
	return seat, err == nil
}

// Quote recomputes the fare for the current class and seat.
func (s *Selection) Quote() fare.Quote {
	seat, ok := s.Selected()
	if !ok {
		return fare.NewQuote(s.base, s.class, "", fare.PositionOther)
	}
	return fare.NewQuote(s.base, s.class, seat.ID, seat.Position())
}
