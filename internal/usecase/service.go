package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Contact ContactService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	notifier := NewMailNotifier(config.Email, log)

	return &Service{
		Booking: NewBookingService(repo, notifier, log),
		Contact: NewContactService(repo, log),
	}
}
