package archive

import (
	"context"
	"database/sql"
	"time"

	"rideshare/internal/registry"
)

// PostgresArchiver appends closed rides to the ride_archive table.
//
// Expected schema:
//
//	CREATE TABLE ride_archive (
//	    ride_id        BIGINT PRIMARY KEY,
//	    driver         TEXT NOT NULL,
//	    vehicle        TEXT NOT NULL,
//	    vehicle_number TEXT NOT NULL,
//	    origin         TEXT NOT NULL,
//	    destination    TEXT NOT NULL,
//	    total_seats    INT NOT NULL,
//	    seats_booked   INT NOT NULL,
//	    offered_at     TIMESTAMPTZ NOT NULL,
//	    ended_at       TIMESTAMPTZ NOT NULL
//	);
type PostgresArchiver struct {
	db *sql.DB
}

// NewPostgresArchiver creates an archiver backed by the given database.
func NewPostgresArchiver(db *sql.DB) *PostgresArchiver {
	return &PostgresArchiver{db: db}
}

var _ Archiver = (*PostgresArchiver)(nil)

// ArchiveRide inserts one closed ride with its frozen statistics.
func (a *PostgresArchiver) ArchiveRide(ctx context.Context, ride registry.RideSnapshot) error {
	query := `
		INSERT INTO ride_archive (ride_id, driver, vehicle, vehicle_number, origin, destination, total_seats, seats_booked, offered_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ride_id) DO NOTHING
	`

	_, err := a.db.ExecContext(ctx, query,
		ride.ID,
		ride.Driver,
		ride.Vehicle,
		ride.VehicleNumber,
		ride.Origin,
		ride.Destination,
		ride.TotalSeats,
		ride.TotalSeats-ride.AvailableSeats,
		ride.CreatedAt,
		time.Now(),
	)
	return err
}
