package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBreakdown(t *testing.T) {
	b := NewBreakdown(1000, nil)
	assert.Equal(t, 1000.00, b.BaseFare)
	assert.Equal(t, 180.00, b.GST)
	assert.Equal(t, 150.00, b.ServiceFee)
	assert.Empty(t, b.AddOns)
	assert.Equal(t, 1330.00, b.Total)

	withMeal := NewBreakdown(1000, []AddOn{AddOnMeal})
	assert.Equal(t, 1580.00, withMeal.Total)
	require.Len(t, withMeal.AddOns, 1)
	assert.Equal(t, "Meal", withMeal.AddOns[0].Label)

	everything := NewBreakdown(1000, []AddOn{AddOnMeal, AddOnBaggage, AddOnWifi})
	assert.Equal(t, 2380.00, everything.Total)
}

func TestNewBreakdown_NoCarriedFare(t *testing.T) {
	b := NewBreakdown(0, nil)
	assert.Equal(t, 150.00, b.Total)

	neg := NewBreakdown(-50, nil)
	assert.Equal(t, 0.0, neg.BaseFare)
	assert.Equal(t, 150.00, neg.Total)
}

func TestParseAddOns(t *testing.T) {
	got, err := ParseAddOns([]string{"wifi,meal", " MEAL ", ""})
	require.NoError(t, err)
	assert.Equal(t, []AddOn{AddOnMeal, AddOnWifi}, got)

	_, err = ParseAddOns([]string{"lounge"})
	assert.ErrorIs(t, err, ErrUnknownAddOn)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodUPI, m)

	m, err = ParsePaymentMethod("NetBanking")
	require.NoError(t, err)
	assert.Equal(t, MethodNetBanking, m)

	_, err = ParsePaymentMethod("cash")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}
