package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightStatus_Valid(t *testing.T) {
	for _, s := range FlightStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, FlightStatus("").Valid())
	assert.False(t, FlightStatus("scheduled").Valid())
	assert.False(t, FlightStatus("Boarding").Valid())
}

func TestSearchFilter_Matches(t *testing.T) {
	f := Flight{Airline: "Delta", DepartureAirport: "JFK", ArrivalAirport: "LAX"}

	tests := []struct {
		name   string
		filter SearchFilter
		want   bool
	}{
		{"empty filter", SearchFilter{}, true},
		{"airline", SearchFilter{Airline: "Delta"}, true},
		{"airline is case sensitive", SearchFilter{Airline: "delta"}, false},
		{"airline is not a prefix match", SearchFilter{Airline: "Del"}, false},
		{"departure and arrival", SearchFilter{Departure: "JFK", Arrival: "LAX"}, true},
		{"all criteria", SearchFilter{Airline: "Delta", Departure: "JFK", Arrival: "LAX"}, true},
		{"one criterion off", SearchFilter{Airline: "Delta", Departure: "JFK", Arrival: "SFO"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(f))
		})
	}
}
