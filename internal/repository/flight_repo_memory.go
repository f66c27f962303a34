package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/flights/internal/domain"
)

// MemoryFlightRepository keeps flights in process memory. Ids start at 1 and are never reused.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights map[int64]domain.Flight
	lastID  int64
}

func NewMemoryFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{flights: make(map[int64]domain.Flight)}
}

func (r *MemoryFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return flights, nil
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return &f, nil
}

func (r *MemoryFlightRepository) Create(_ context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	flight.ID = r.lastID
	r.flights[flight.ID] = *flight
	return nil
}

func (r *MemoryFlightRepository) Update(_ context.Context, id int64, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[id]; !ok {
		return domain.ErrFlightNotFound
	}
	updated := *flight
	updated.ID = id
	r.flights[id] = updated
	return nil
}

func (r *MemoryFlightRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[id]; !ok {
		return domain.ErrFlightNotFound
	}
	delete(r.flights, id)
	return nil
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
