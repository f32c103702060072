// Package fare derives ticket prices from a server-supplied base fare.
package fare

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownCabinClass = errors.New("unknown cabin class")

type CabinClass string

const (
	Economy  CabinClass = "economy"
	Business CabinClass = "business"
	First    CabinClass = "first"
)

var classMultipliers = map[CabinClass]float64{
	Economy:  1.0,
	Business: 1.6,
	First:    2.2,
}

// ParseCabinClass is case-insensitive; the empty string selects economy.
func ParseCabinClass(s string) (CabinClass, error) {
	c := CabinClass(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return Economy, nil
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCabinClass, s)
	}
	return c, nil
}

func (c CabinClass) Valid() bool {
	_, ok := classMultipliers[c]
	return ok
}

// Multiplier returns 0 for an invalid class.
func (c CabinClass) Multiplier() float64 {
	return classMultipliers[c]
}

type SeatPosition int

const (
	PositionOther SeatPosition = iota
	PositionAisle
	PositionWindow
)

func (p SeatPosition) String() string {
	switch p {
	case PositionWindow:
		return "window"
	case PositionAisle:
		return "aisle"
	default:
		return "standard"
	}
}

func (p SeatPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p SeatPosition) Surcharge() float64 {
	switch p {
	case PositionWindow:
		return 0.10
	case PositionAisle:
		return 0.05
	default:
		return 0
	}
}

// Round2 rounds half away from zero to two decimals. The same rounding is
// used for what the seat page shows and what is submitted downstream.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate returns round2(base × classMultiplier × (1 + seatSurcharge)).
// A non-positive base price yields zero.
func Calculate(base float64, class CabinClass, pos SeatPosition) float64 {
	if base <= 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return 0
	}
	return Round2(base * class.Multiplier() * (1 + pos.Surcharge()))
}

// Quote is the fare shown on the seat page for one class/seat combination.
type Quote struct {
	BasePrice  float64      `json:"base_price"`
	CabinClass CabinClass   `json:"cabin_class"`
	Seat       string       `json:"seat,omitempty"`
	Position   SeatPosition `json:"position"`
	Multiplier float64      `json:"multiplier"`
	Surcharge  float64      `json:"surcharge"`
	FinalPrice float64      `json:"final_price"`
}

func NewQuote(base float64, class CabinClass, seat string, pos SeatPosition) Quote {
	if seat == "" {
		pos = PositionOther
	}
	return Quote{
		BasePrice:  base,
		CabinClass: class,
		Seat:       seat,
		Position:   pos,
		Multiplier: class.Multiplier(),
		Surcharge:  pos.Surcharge(),
		FinalPrice: Calculate(base, class, pos),
	}
}

// Bookable reports whether the quote may be submitted to the booking API.
func (q Quote) Bookable() bool {
	return q.BasePrice > 0 && q.FinalPrice > 0
}
