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

type ContactService interface {
	SubmitMessage(ctx context.Context, req *request.ContactMessageRequest) error
	GetMessages(ctx context.Context) ([]response.ContactMessageResponse, error)
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *request.ContactMessageRequest) error {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact message validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	msg := &entity.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Contact.Create(ctx, msg); err != nil {
		return err
	}

	s.log.Info("Contact message received",
		zap.Int64("message_id", msg.ID),
		zap.String("email", msg.Email),
	)

	return nil
}

func (s *contactService) GetMessages(ctx context.Context) ([]response.ContactMessageResponse, error) {
	messages, err := s.repo.Contact.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contact messages: %w", err)
	}

	messageResponses := make([]response.ContactMessageResponse, 0, len(messages))
	for _, msg := range messages {
		messageResponses = append(messageResponses, response.ContactMessageToResponse(msg))
	}

	return messageResponses, nil
}
