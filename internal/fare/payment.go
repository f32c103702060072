package fare

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	GSTRate    = 0.18
	ServiceFee = 150.0
)

var (
	ErrUnknownAddOn         = errors.New("unknown add-on")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

type AddOn string

const (
	AddOnMeal    AddOn = "meal"
	AddOnBaggage AddOn = "baggage"
	AddOnWifi    AddOn = "wifi"
)

var addOnPrices = map[AddOn]float64{
	AddOnMeal:    250,
	AddOnBaggage: 500,
	AddOnWifi:    300,
}

var addOnLabels = map[AddOn]string{
	AddOnMeal:    "Meal",
	AddOnBaggage: "Extra Baggage",
	AddOnWifi:    "In-flight WiFi",
}

func (a AddOn) Price() float64 { return addOnPrices[a] }

// ParseAddOns accepts a list of names, dropping duplicates and blanks.
func ParseAddOns(names []string) ([]AddOn, error) {
	seen := make(map[AddOn]bool, len(names))
	out := make([]AddOn, 0, len(names))
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			a := AddOn(strings.ToLower(strings.TrimSpace(part)))
			if a == "" || seen[a] {
				continue
			}
			if _, ok := addOnPrices[a]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAddOn, part)
			}
			seen[a] = true
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodWallet     PaymentMethod = "wallet"
	MethodNetBanking PaymentMethod = "netbanking"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return MethodUPI, nil
	case MethodUPI, MethodCard, MethodWallet, MethodNetBanking:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

type AddOnLine struct {
	AddOn AddOn   `json:"add_on"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Breakdown is the payment page fare summary.
type Breakdown struct {
	BaseFare   float64     `json:"base_fare"`
	GST        float64     `json:"gst"`
	ServiceFee float64     `json:"service_fee"`
	AddOns     []AddOnLine `json:"add_ons"`
	Total      float64     `json:"total"`
}

// NewBreakdown computes base + 18% GST + service fee + add-ons. Negative
// base fares are treated as zero.
func NewBreakdown(base float64, addOns []AddOn) Breakdown {
	if base < 0 {
		base = 0
	}
	b := Breakdown{
		BaseFare:   Round2(base),
		GST:        Round2(base * GSTRate),
		ServiceFee: ServiceFee,
		AddOns:     make([]AddOnLine, 0, len(addOns)),
	}
	total := base + base*GSTRate + ServiceFee
	for _, a := range addOns {
		b.AddOns = append(b.AddOns, AddOnLine{AddOn: a, Label: addOnLabels[a], Price: a.Price()})
		total += a.Price()
	}
	b.Total = Round2(total)
	return b
}

// AddOnCatalog lists every add-on with its price, in display order.
func AddOnCatalog() []AddOnLine {
	all := []AddOn{AddOnMeal, AddOnBaggage, AddOnWifi}
	out := make([]AddOnLine, 0, len(all))
	for _, a := range all {
		out = append(out, AddOnLine{AddOn: a, Label: addOnLabels[a], Price: a.Price()})
	}
	return out
}

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodUPI, MethodCard, MethodWallet, MethodNetBanking}
}
