package notify

import (
	"context"

	"github.com/Domenick1991/flights/internal/kafka"
	"github.com/Domenick1991/flights/internal/logger"
)

// Notifier turns flight events into status notifications. Delivery is a log line for now.
type Notifier struct {
	log logger.Logger
}

func NewNotifier(log logger.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(_ context.Context, event kafka.FlightEvent) error {
	switch event.Type {
	case kafka.EventFlightCreated:
		n.log.Info("flight scheduled", "flightId", event.FlightID, "flightNumber", event.FlightNumber, "airline", event.Airline, "status", event.Status)
	case kafka.EventFlightUpdated:
		n.log.Info("flight status changed", "flightId", event.FlightID, "flightNumber", event.FlightNumber, "status", event.Status)
	case kafka.EventFlightDeleted:
		n.log.Info("flight removed", "flightId", event.FlightID)
	default:
		n.log.Warn("unknown flight event", "type", event.Type, "flightId", event.FlightID)
	}
	return nil
}
