package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookedDates(ctx context.Context) (*response.BookedDatesResponse, error)

	// Admin endpoints
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	hall := entity.Hall(req.Hall)
	pkg := entity.Package(req.Package)

	// Check the date is free. The partial unique index repeats this check
	// inside the insert, so a concurrent duplicate still loses cleanly.
	taken, err := s.repo.Booking.ExistsActive(ctx, hall, req.Date)
	if err != nil {
		s.log.Error("Failed to check date availability", zap.Error(err))
		return nil, fmt.Errorf("check date availability: %w", err)
	}
	if taken {
		s.log.Warn("Booking conflict",
			zap.String("hall", req.Hall),
			zap.String("date", req.Date),
		)
		return nil, entity.ErrDateBooked
	}

	total, deposit := ComputePrice(hall, pkg)

	booking := &entity.Booking{
		ID:        utils.GenerateBookingID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Guests:    req.Guests,
		EventType: req.EventType,
		Hall:      hall,
		Package:   pkg,
		Total:     total,
		Deposit:   deposit,
		Status:    entity.BookingStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("hall", req.Hall),
		zap.String("date", req.Date),
		zap.Float64("total", total),
	)

	s.notifier.BookingCreated(booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookedDates(ctx context.Context) (*response.BookedDatesResponse, error) {
	small, err := s.repo.Booking.FindActiveDates(ctx, entity.HallSmall)
	if err != nil {
		return nil, fmt.Errorf("get booked dates: %w", err)
	}

	big, err := s.repo.Booking.FindActiveDates(ctx, entity.HallBig)
	if err != nil {
		return nil, fmt.Errorf("get booked dates: %w", err)
	}

	return &response.BookedDatesResponse{
		Small: small,
		Big:   big,
	}, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, response.BookingToResponse(booking))
	}

	return bookingResponses, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed",
			zap.Any("errors", errs),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	status := entity.BookingStatus(req.Status)
	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	booking.Status = status

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	if status == entity.BookingStatusConfirmed || status == entity.BookingStatusCancelled {
		s.notifier.StatusChanged(booking)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}
