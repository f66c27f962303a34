package api

import (
	"strings"
	"time"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/Domenick1991/flights/internal/validator"
)

// Accepted timestamp forms. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

type flightRequest struct {
	FlightNumber     string `json:"flightNumber"`
	Airline          string `json:"airline"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	Status           string `json:"status"`
}

// toDomain converts the request. Timestamps that are present but unreadable are
// reported per field; absent ones are left zero for the required rule to catch.
func (r flightRequest) toDomain() (domain.Flight, validator.Errors) {
	errs := validator.Errors{}
	f := domain.Flight{
		FlightNumber:     r.FlightNumber,
		Airline:          r.Airline,
		DepartureAirport: r.DepartureAirport,
		ArrivalAirport:   r.ArrivalAirport,
		Status:           domain.FlightStatus(r.Status),
	}

	var ok bool
	if f.DepartureTime, ok = parseTimestamp(r.DepartureTime); !ok {
		errs.Add("DepartureTime", "DepartureTime must be a valid timestamp.")
	}
	if f.ArrivalTime, ok = parseTimestamp(r.ArrivalTime); !ok {
		errs.Add("ArrivalTime", "ArrivalTime must be a valid timestamp.")
	}
	return f, errs
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
