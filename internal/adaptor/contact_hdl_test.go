package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContactService struct {
	messages []response.ContactMessageResponse
	err      error
}

func (s *fakeContactService) SubmitMessage(ctx context.Context, req *request.ContactMessageRequest) error {
	return s.err
}

func (s *fakeContactService) GetMessages(ctx context.Context) ([]response.ContactMessageResponse, error) {
	return s.messages, s.err
}

func newContactRouter(svc *fakeContactService) *chi.Mux {
	h := NewContactHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/contact", h.SubmitMessage)
	r.Get("/api/contact-messages", h.GetMessages)
	return r
}

func TestSubmitMessageHandler(t *testing.T) {
	router := newContactRouter(&fakeContactService{})

	body := `{"name":"Bob","email":"bob@example.com","message":"Availability in June?"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Message sent successfully")
}

func TestSubmitMessageHandlerValidation(t *testing.T) {
	router := newContactRouter(&fakeContactService{err: entity.ErrValidation})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestGetMessagesHandler(t *testing.T) {
	router := newContactRouter(&fakeContactService{
		messages: []response.ContactMessageResponse{
			{
				ID:        1,
				Name:      "Bob",
				Email:     "bob@example.com",
				Message:   "Availability in June?",
				CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact-messages", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var messages []response.ContactMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, int64(1), messages[0].ID)
}
