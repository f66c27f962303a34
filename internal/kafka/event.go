package kafka

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/Domenick1991/flights/internal/domain"
)

const (
	EventFlightCreated = "flight_created"
	EventFlightUpdated = "flight_updated"
	EventFlightDeleted = "flight_deleted"
)

// FlightEvent is published on every successful flight write.
type FlightEvent struct {
	Type         string              `json:"type"`
	FlightID     int64               `json:"flightId"`
	FlightNumber string              `json:"flightNumber,omitempty"`
	Airline      string              `json:"airline,omitempty"`
	Status       domain.FlightStatus `json:"status,omitempty"`
	OccurredAt   time.Time           `json:"occurredAt"`
}

func NewFlightEvent(eventType string, f *domain.Flight, at time.Time) FlightEvent {
	return FlightEvent{
		Type:         eventType,
		FlightID:     f.ID,
		FlightNumber: f.FlightNumber,
		Airline:      f.Airline,
		Status:       f.Status,
		OccurredAt:   at.UTC(),
	}
}

// Key partitions events by flight so one flight's history stays ordered.
func (e FlightEvent) Key() string {
	return strconv.FormatInt(e.FlightID, 10)
}

func DecodeFlightEvent(data []byte) (FlightEvent, error) {
	var e FlightEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
