package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalZoneless(t *testing.T) {
	var f Flight
	err := json.Unmarshal([]byte(`{"id":7,"flight_no":"AI101","departure":"2025-10-20T10:30:00","arrival":"2025-10-20T12:45:00.123456"}`), &f)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 20, 10, 30, 0, 0, time.UTC), f.Departure.Time)
	assert.Equal(t, 12, f.Arrival.Hour())
}

func TestTimestamp_UnmarshalRFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-10-20T10:30:00+05:30"`), &ts))
	assert.Equal(t, time.Date(2025, 10, 20, 5, 0, 0, 0, time.UTC), ts.UTC())
}

func TestTimestamp_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

func TestJourneyState_Terminal(t *testing.T) {
	assert.True(t, JourneyConfirmed.Terminal())
	assert.True(t, JourneyCancelled.Terminal())
	assert.False(t, JourneyFailedPayment.Terminal())
	assert.False(t, JourneyInitiated.Terminal())
}
