package notify

import (
	"context"
	"testing"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/Domenick1991/flights/internal/kafka"
	"github.com/Domenick1991/flights/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifier_Notify(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewNotifier(logger.FromZap(zap.New(core)))
	ctx := context.Background()

	require.NoError(t, n.Notify(ctx, kafka.FlightEvent{Type: kafka.EventFlightCreated, FlightID: 1, Status: domain.FlightStatusScheduled}))
	require.NoError(t, n.Notify(ctx, kafka.FlightEvent{Type: kafka.EventFlightUpdated, FlightID: 1, Status: domain.FlightStatusDelayed}))
	require.NoError(t, n.Notify(ctx, kafka.FlightEvent{Type: kafka.EventFlightDeleted, FlightID: 1}))
	require.NoError(t, n.Notify(ctx, kafka.FlightEvent{Type: "flight_exploded", FlightID: 1}))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "flight scheduled", entries[0].Message)
	assert.Equal(t, "flight status changed", entries[1].Message)
	assert.EqualValues(t, "Delayed", entries[1].ContextMap()["status"])
	assert.Equal(t, "flight removed", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}
