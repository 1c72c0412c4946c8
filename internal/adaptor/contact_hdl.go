package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitMessage handles POST /api/contact (public)
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req request.ContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.SubmitMessage(r.Context(), &req); err != nil {
		if errors.Is(err, entity.ErrValidation) {
			h.log.Warn("Submit message validation failed", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error())
			return
		}

		h.log.Error("Failed to submit message", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{
		Success: true,
		Message: "Message sent successfully. We'll contact you soon!",
	})
}

// GetMessages handles GET /api/contact-messages (admin)
func (h *ContactHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetMessages(r.Context())
	if err != nil {
		h.log.Error("Failed to get messages", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, messages)
}
