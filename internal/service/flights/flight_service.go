package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/Domenick1991/flights/internal/kafka"
	"github.com/Domenick1991/flights/internal/logger"
	"github.com/Domenick1991/flights/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, flight domain.Flight) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Flight, error)
}

// FlightCache stores the full flight listing. GetFlights returns nil on a miss.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// DefaultPublishTimeout bounds how long a write waits on the event broker.
const DefaultPublishTimeout = 3 * time.Second

type FlightService struct {
	repo           repository.FlightRepository
	cache          FlightCache
	producer       Producer
	topic          string
	publishTimeout time.Duration
	log            logger.Logger
	now            func() time.Time
}

type FlightServiceOption func(*FlightService)

// WithEvents publishes a kafka.FlightEvent to topic after every successful write.
func WithEvents(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithPublishTimeout(d time.Duration) FlightServiceOption {
	return func(s *FlightService) {
		s.publishTimeout = d
	}
}

func WithLogger(log logger.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = log
	}
}

// NewFlightService builds the service. cache may be nil.
func NewFlightService(repo repository.FlightRepository, cache FlightCache, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		repo:           repo,
		cache:          cache,
		publishTimeout: DefaultPublishTimeout,
		log:            logger.NewNop(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			s.log.Warn("flights cache read failed", "error", err)
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("flights cache write failed", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight domain.Flight) (*domain.Flight, error) {
	flight.ID = 0
	if err := s.repo.Create(ctx, &flight); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, kafka.EventFlightCreated, &flight)
	return &flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, flight domain.Flight) error {
	flight.ID = id
	if err := s.repo.Update(ctx, id, &flight); err != nil {
		return err
	}
	s.afterWrite(ctx, kafka.EventFlightUpdated, &flight)
	return nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, kafka.EventFlightDeleted, &domain.Flight{ID: id})
	return nil
}

// Search returns the flights matching every non-empty criterion of filter exactly.
// It reads the store directly, never the cached listing.
func (s *FlightService) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Flight, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Flight, 0, len(all))
	for _, f := range all {
		if filter.Matches(f) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// afterWrite drops the cached listing and publishes the change. Neither can fail the write.
func (s *FlightService) afterWrite(ctx context.Context, eventType string, flight *domain.Flight) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn("flights cache invalidation failed", "error", err, "flightId", flight.ID)
		}
	}

	if s.producer == nil || s.topic == "" {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	event := kafka.NewFlightEvent(eventType, flight, s.now())
	if err := s.producer.Publish(pubCtx, s.topic, event.Key(), event); err != nil {
		s.log.Warn("failed to publish flight event", "type", eventType, "flightId", flight.ID, "error", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
