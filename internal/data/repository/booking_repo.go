package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
	Delete(ctx context.Context, id string) error

	// Business queries (status != 'cancelled' is the single active predicate)
	ExistsActive(ctx context.Context, hall entity.Hall, date string) (bool, error)
	FindActiveDates(ctx context.Context, hall entity.Hall) ([]string, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, name, email, phone, date, guests, event_type, hall, package, total, deposit, status, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Date,
		&booking.Guests,
		&booking.EventType,
		&booking.Hall,
		&booking.Package,
		&booking.Total,
		&booking.Deposit,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Date,
		booking.Guests,
		booking.EventType,
		booking.Hall,
		booking.Package,
		booking.Total,
		booking.Deposit,
		booking.Status,
		booking.CreatedAt,
	)

	if err != nil {
		// The partial unique index on (hall, date) WHERE status <> 'cancelled'
		// is the authority under concurrent creates.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.log.Warn("Booking rejected by unique index",
				zap.String("hall", string(booking.Hall)),
				zap.String("date", booking.Date),
			)
			return entity.ErrDateBooked
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBookingNotFound
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func (r *bookingRepository) ExistsActive(ctx context.Context, hall entity.Hall, date string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE hall = $1 AND date = $2 AND status <> 'cancelled'
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, hall, date).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check active booking",
			zap.Error(err),
			zap.String("hall", string(hall)),
			zap.String("date", date),
		)
		return false, fmt.Errorf("check active booking %s/%s: %w", string(hall), date, err)
	}

	return exists, nil
}

func (r *bookingRepository) FindActiveDates(ctx context.Context, hall entity.Hall) ([]string, error) {
	query := `
		SELECT date FROM bookings
		WHERE hall = $1 AND status <> 'cancelled'
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, hall)
	if err != nil {
		r.log.Error("Failed to find active dates",
			zap.Error(err),
			zap.String("hall", string(hall)),
		)
		return nil, fmt.Errorf("find active dates for hall %s: %w", string(hall), err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			r.log.Error("Failed to scan date row", zap.Error(err))
			return nil, fmt.Errorf("scan date row: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}
