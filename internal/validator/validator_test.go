package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/Domenick1991/flights/internal/validator"
	"github.com/stretchr/testify/assert"
)

func validFlight() domain.Flight {
	dep := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	return domain.Flight{
		FlightNumber:     "XY123",
		Airline:          "TestAir",
		DepartureAirport: "JFK",
		ArrivalAirport:   "LAX",
		DepartureTime:    dep,
		ArrivalTime:      dep.Add(3 * time.Hour),
		Status:           domain.FlightStatusScheduled,
	}
}

func TestFlight(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *domain.Flight)
		want   validator.Errors
	}{
		{
			name:   "valid flight",
			mutate: func(f *domain.Flight) {},
			want:   nil,
		},
		{
			name:   "flight number too long",
			mutate: func(f *domain.Flight) { f.FlightNumber = "ABCDEFGHIJK" },
			want:   validator.Errors{"FlightNumber": {"FlightNumber cannot exceed 10 characters."}},
		},
		{
			name:   "flight number at limit",
			mutate: func(f *domain.Flight) { f.FlightNumber = "ABCDEFGHIJ" },
			want:   nil,
		},
		{
			name:   "airline too long",
			mutate: func(f *domain.Flight) { f.Airline = strings.Repeat("a", 51) },
			want:   validator.Errors{"Airline": {"Airline cannot exceed 50 characters."}},
		},
		{
			name:   "airline length counts characters",
			mutate: func(f *domain.Flight) { f.Airline = strings.Repeat("é", 50) },
			want:   nil,
		},
		{
			name:   "departure airport too short",
			mutate: func(f *domain.Flight) { f.DepartureAirport = "JF" },
			want:   validator.Errors{"DepartureAirport": {"DepartureAirport must be 3-5 characters."}},
		},
		{
			name:   "arrival airport too long",
			mutate: func(f *domain.Flight) { f.ArrivalAirport = "KLAXXX" },
			want:   validator.Errors{"ArrivalAirport": {"ArrivalAirport must be 3-5 characters."}},
		},
		{
			name:   "icao airport code",
			mutate: func(f *domain.Flight) { f.ArrivalAirport = "KLAX" },
			want:   nil,
		},
		{
			name:   "blank flight number",
			mutate: func(f *domain.Flight) { f.FlightNumber = "   " },
			want:   validator.Errors{"FlightNumber": {"FlightNumber is required."}},
		},
		{
			name:   "blank airline",
			mutate: func(f *domain.Flight) { f.Airline = "  " },
			want:   validator.Errors{"Airline": {"Airline is required."}},
		},
		{
			name:   "blank departure airport within length",
			mutate: func(f *domain.Flight) { f.DepartureAirport = "   " },
			want:   validator.Errors{"DepartureAirport": {"DepartureAirport is required."}},
		},
		{
			name:   "tab only arrival airport",
			mutate: func(f *domain.Flight) { f.ArrivalAirport = "\t\t\t" },
			want:   validator.Errors{"ArrivalAirport": {"ArrivalAirport is required."}},
		},
		{
			name:   "surrounding spaces are kept",
			mutate: func(f *domain.Flight) { f.Airline = " TestAir " },
			want:   nil,
		},
		{
			name:   "arrival equal to departure",
			mutate: func(f *domain.Flight) { f.ArrivalTime = f.DepartureTime },
			want:   validator.Errors{"ArrivalTime": {"ArrivalTime must be after DepartureTime."}},
		},
		{
			name:   "arrival before departure",
			mutate: func(f *domain.Flight) { f.ArrivalTime = f.DepartureTime.Add(-time.Minute) },
			want:   validator.Errors{"ArrivalTime": {"ArrivalTime must be after DepartureTime."}},
		},
		{
			name:   "unknown status",
			mutate: func(f *domain.Flight) { f.Status = "Boarding" },
			want:   validator.Errors{"Status": {"Invalid FlightStatus value."}},
		},
		{
			name:   "status is case sensitive",
			mutate: func(f *domain.Flight) { f.Status = "scheduled" },
			want:   validator.Errors{"Status": {"Invalid FlightStatus value."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlight()
			tt.mutate(&f)

			assert.Equal(t, tt.want, validator.Flight(&f))
		})
	}
}

func TestFlight_CollectsEveryViolation(t *testing.T) {
	errs := validator.Flight(&domain.Flight{})

	assert.Equal(t, validator.Errors{
		"FlightNumber":     {"FlightNumber is required."},
		"Airline":          {"Airline is required."},
		"DepartureAirport": {"DepartureAirport is required."},
		"ArrivalAirport":   {"ArrivalAirport is required."},
		"DepartureTime":    {"DepartureTime is required."},
		"ArrivalTime":      {"ArrivalTime is required."},
		"Status":           {"Status is required."},
	}, errs)
}

func TestErrors(t *testing.T) {
	errs := validator.Errors{}
	errs.Add("Status", "Invalid FlightStatus value.")
	errs.Add("Airline", "Airline is required.")
	errs.Set("Status", "Status is required.")

	assert.Equal(t, []string{"Status is required."}, errs["Status"])
	assert.Equal(t, "Airline is required. Status is required.", errs.Error())
}
