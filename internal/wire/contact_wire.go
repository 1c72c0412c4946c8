package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContact(r chi.Router, contactHandler *adaptor.ContactHandler) {
	// POST /api/contact - Submit contact message (public)
	r.Post("/api/contact", contactHandler.SubmitMessage)

	// GET /api/contact-messages - List contact messages (admin)
	r.Get("/api/contact-messages", contactHandler.GetMessages)
}
