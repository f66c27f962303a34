package repository

import (
	"context"
	_ "embed"

	"github.com/Domenick1991/flights/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// Create stores flight and sets its ID.
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, id int64, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

//go:embed schema.sql
var schema string

const flightColumns = `id, flight_number, airline, departure_airport, arrival_airport, departure_time, arrival_time, status`

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) *PGFlightRepository {
	return &PGFlightRepository{db: db}
}

// EnsureSchema creates the flights table when it does not exist yet.
func (r *PGFlightRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schema)
	return errors.Wrap(err, "create flights schema")
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query flights")
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, errors.Wrap(rows.Err(), "iterate flights")
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	return scanFlight(row)
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	row := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline, departure_airport, arrival_airport, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		flight.FlightNumber, flight.Airline, flight.DepartureAirport, flight.ArrivalAirport,
		flight.DepartureTime, flight.ArrivalTime, string(flight.Status))
	if err := row.Scan(&flight.ID); err != nil {
		return errors.Wrap(err, "insert flight")
	}
	return nil
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, flight *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET flight_number=$2, airline=$3, departure_airport=$4, arrival_airport=$5,
		departure_time=$6, arrival_time=$7, status=$8, updated_at=now() WHERE id=$1`,
		id, flight.FlightNumber, flight.Airline, flight.DepartureAirport, flight.ArrivalAirport,
		flight.DepartureTime, flight.ArrivalTime, string(flight.Status))
	if err != nil {
		return errors.Wrapf(err, "update flight %d", id)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete flight %d", id)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		f      domain.Flight
		status string
	)
	err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.DepartureAirport, &f.ArrivalAirport, &f.DepartureTime, &f.ArrivalTime, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan flight")
	}
	f.Status = domain.FlightStatus(status)
	f.DepartureTime = f.DepartureTime.UTC()
	f.ArrivalTime = f.ArrivalTime.UTC()
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
