package domain

import (
	"errors"
	"time"
)

// ErrFlightNotFound is returned when no flight is stored under the requested id.
var ErrFlightNotFound = errors.New("flight not found")

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusDeparted  FlightStatus = "Departed"
	FlightStatusArrived   FlightStatus = "Arrived"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

var FlightStatuses = []FlightStatus{
	FlightStatusScheduled,
	FlightStatusDelayed,
	FlightStatusDeparted,
	FlightStatusArrived,
	FlightStatusCancelled,
}

func (s FlightStatus) Valid() bool {
	for _, known := range FlightStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Flight struct {
	ID               int64        `json:"id"`
	FlightNumber     string       `json:"flightNumber" validate:"required,notblank,max=10"`
	Airline          string       `json:"airline" validate:"required,notblank,max=50"`
	DepartureAirport string       `json:"departureAirport" validate:"required,notblank,airport"`
	ArrivalAirport   string       `json:"arrivalAirport" validate:"required,notblank,airport"`
	DepartureTime    time.Time    `json:"departureTime" validate:"required"`
	ArrivalTime      time.Time    `json:"arrivalTime" validate:"required,gtfield=DepartureTime"`
	Status           FlightStatus `json:"status" validate:"required,flightstatus"`
}

// SearchFilter narrows a flight listing. Empty fields do not filter.
type SearchFilter struct {
	Airline   string
	Departure string
	Arrival   string
}

// Matches reports whether f equals every non-empty criterion exactly.
func (sf SearchFilter) Matches(f Flight) bool {
	if sf.Airline != "" && f.Airline != sf.Airline {
		return false
	}
	if sf.Departure != "" && f.DepartureAirport != sf.Departure {
		return false
	}
	if sf.Arrival != "" && f.ArrivalAirport != sf.Arrival {
		return false
	}
	return true
}
