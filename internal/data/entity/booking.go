package entity

import (
	"time"
)

type Hall string

const (
	HallSmall Hall = "small"
	HallBig   Hall = "big"
)

type Package string

const (
	PackageBasic   Package = "basic"
	PackagePremium Package = "premium"
	PackageLuxury  Package = "luxury"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one hall reservation. A booking whose status is not
// "cancelled" occupies its (hall, date) slot.
type Booking struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Phone     string        `db:"phone"`
	Date      string        `db:"date"`
	Guests    int           `db:"guests"`
	EventType string        `db:"event_type"`
	Hall      Hall          `db:"hall"`
	Package   Package       `db:"package"`
	Total     float64       `db:"total"`
	Deposit   float64       `db:"deposit"`
	Status    BookingStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
}

// Active reports whether the booking still occupies its date.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}
