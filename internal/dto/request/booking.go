package request

type CreateBookingRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=1,max=30"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Guests    int    `json:"guests" validate:"required,min=1"`
	EventType string `json:"eventType" validate:"required,min=1,max=100"`
	Hall      string `json:"hall" validate:"required,oneof=small big"`
	Package   string `json:"package" validate:"required,oneof=basic premium luxury"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
