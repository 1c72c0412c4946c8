package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/booked-dates - Occupied dates per hall, for the booking UI
	r.Get("/api/booked-dates", bookingHandler.GetBookedDates)

	// POST /api/book - Create new booking
	r.Post("/api/book", bookingHandler.CreateBooking)

	// ==================== ADMIN ROUTES ====================
	// GET /api/bookings - List all bookings (admin)
	r.Get("/api/bookings", bookingHandler.GetBookings)

	// PATCH /api/bookings/{id} - Update booking status (admin)
	r.Patch("/api/bookings/{id}", bookingHandler.UpdateBookingStatus)

	// DELETE /api/bookings/{id} - Delete booking (admin)
	r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
}
