package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Date      string               `json:"date"`
	Guests    int                  `json:"guests"`
	EventType string               `json:"eventType"`
	Hall      entity.Hall          `json:"hall"`
	Package   entity.Package       `json:"package"`
	Total     float64              `json:"total"`
	Deposit   float64              `json:"deposit"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

// BookedDatesResponse lists occupied dates per hall so the booking UI can
// disable them.
type BookedDatesResponse struct {
	Small []string `json:"small"`
	Big   []string `json:"big"`
}

type BookingCreatedResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BookingUpdatedResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Date:      b.Date,
		Guests:    b.Guests,
		EventType: b.EventType,
		Hall:      b.Hall,
		Package:   b.Package,
		Total:     b.Total,
		Deposit:   b.Deposit,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
