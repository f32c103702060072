// Package handoff carries page state between the seat, booking, payment and
// confirmation steps as short-lived signed tokens.
package handoff

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cx-tal-miterani/flightsim-portal/internal/fare"
)

const (
	subjectSeat         = "seat"
	subjectPayment      = "payment"
	subjectConfirmation = "confirmation"

	issuer = "flightsim-portal"
)

var (
	ErrMissing  = errors.New("no carried state")
	ErrInvalid  = errors.New("carried state is invalid")
	ErrMismatch = errors.New("carried state belongs to another page")
)

// Seat is carried from the seat page to the booking page.
type Seat struct {
	FlightID       int64           `json:"flight_id"`
	SelectedSeat   string          `json:"selected_seat"`
	CabinClass     fare.CabinClass `json:"cabin_class"`
	FinalPrice     float64         `json:"final_price"`
	ReturnFlightID int64           `json:"return_flight_id,omitempty"`
}

func (s Seat) validate() error {
	if s.FlightID <= 0 {
		return fmt.Errorf("%w: flight id", ErrInvalid)
	}
	if !s.CabinClass.Valid() {
		return fmt.Errorf("%w: cabin class %q", ErrInvalid, s.CabinClass)
	}
	if s.FinalPrice < 0 {
		return fmt.Errorf("%w: negative fare", ErrInvalid)
	}
	return nil
}

// Payment is carried from the booking page to the payment page.
type Payment struct {
	PNR        string  `json:"pnr"`
	TotalPrice float64 `json:"total_price"`
}

// Confirmation is carried from the payment page to the confirmation page.
type Confirmation struct {
	PNR         string  `json:"pnr"`
	TotalAmount float64 `json:"total_amount"`
}

type claims[T any] struct {
	jwt.RegisteredClaims
	Data T `json:"data"`
}

// Carrier signs and verifies handoff tokens with an HMAC secret.
type Carrier struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCarrier(secret string, ttl time.Duration) *Carrier {
	return &Carrier{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (c *Carrier) WithClock(now func() time.Time) *Carrier {
	c.now = now
	return c
}

func (c *Carrier) IssueSeat(s Seat) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	return issue(c, subjectSeat, s)
}

// Seat decodes a seat handoff for flightID.
func (c *Carrier) Seat(token string, flightID int64) (Seat, error) {
	s, err := parse[Seat](c, token, subjectSeat)
	if err != nil {
		return Seat{}, err
	}
	if s.FlightID != flightID {
		return Seat{}, ErrMismatch
	}
	if err := s.validate(); err != nil {
		return Seat{}, err
	}
	return s, nil
}

func (c *Carrier) IssuePayment(p Payment) (string, error) {
	if p.PNR == "" {
		return "", fmt.Errorf("%w: empty pnr", ErrInvalid)
	}
	return issue(c, subjectPayment, p)
}

func (c *Carrier) Payment(token, pnr string) (Payment, error) {
	p, err := parse[Payment](c, token, subjectPayment)
	if err != nil {
		return Payment{}, err
	}
	if !strings.EqualFold(p.PNR, pnr) {
		return Payment{}, ErrMismatch
	}
	if p.TotalPrice < 0 {
		return Payment{}, fmt.Errorf("%w: negative total", ErrInvalid)
	}
	return p, nil
}

func (c *Carrier) IssueConfirmation(cf Confirmation) (string, error) {
	if cf.PNR == "" {
		return "", fmt.Errorf("%w: empty pnr", ErrInvalid)
	}
	return issue(c, subjectConfirmation, cf)
}

func (c *Carrier) Confirmation(token, pnr string) (Confirmation, error) {
	cf, err := parse[Confirmation](c, token, subjectConfirmation)
	if err != nil {
		return Confirmation{}, err
	}
	if !strings.EqualFold(cf.PNR, pnr) {
		return Confirmation{}, ErrMismatch
	}
	return cf, nil
}

func issue[T any](c *Carrier, subject string, data T) (string, error) {
	now := c.now()
	cl := claims[T]{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Data: data,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign handoff: %w", err)
	}
	return signed, nil
}

func parse[T any](c *Carrier, token, subject string) (T, error) {
	var zero T
	if strings.TrimSpace(token) == "" {
		return zero, ErrMissing
	}
	cl := &claims[T]{}
	_, err := jwt.ParseWithClaims(token, cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenInvalidSubject) {
			return zero, ErrMismatch
		}
		return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cl.Data, nil
}
