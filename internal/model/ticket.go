package model

// DefaultTicketType is used when a seat is booked without naming a ticket type.
const DefaultTicketType = "Default"

// Ticket is one seat of one screening.
type Ticket struct {
	ID          string `json:"TicketID"`
	BookingID   string `json:"BookingID"`
	ScreeningID string `json:"ScreeningID"`
	TicketType  string `json:"TicketType"`
	SeatRow     int    `json:"SeatRow"`
	SeatColumn  int    `json:"SeatColumn"`
}

func (t *Ticket) Seat() Seat {
	return Seat{Row: t.SeatRow, Column: t.SeatColumn}
}

// CreateTicketRequest books a single seat (POST /api/tickets).
type CreateTicketRequest struct {
	BookingID   string `json:"BookingID" binding:"required"`
	ScreeningID string `json:"ScreeningID" binding:"required"`
	TicketType  string `json:"TicketType" binding:"required"`
	SeatRow     int    `json:"SeatRow" binding:"required,gte=1"`
	SeatColumn  int    `json:"SeatColumn" binding:"required,gte=1"`
}

func (r CreateTicketRequest) BookSeatsRequest() BookSeatsRequest {
	return BookSeatsRequest{
		BookingID:   r.BookingID,
		ScreeningID: r.ScreeningID,
		TicketType:  r.TicketType,
		Seats:       []Seat{{Row: r.SeatRow, Column: r.SeatColumn}},
	}
}

type UpdateTicketParams struct {
	BookingID   *string `json:"BookingID" binding:"omitempty,min=1"`
	ScreeningID *string `json:"ScreeningID" binding:"omitempty,min=1"`
	TicketType  *string `json:"TicketType" binding:"omitempty,min=1"`
	SeatRow     *int    `json:"SeatRow" binding:"omitempty,gte=1"`
	SeatColumn  *int    `json:"SeatColumn" binding:"omitempty,gte=1"`
}

func (p UpdateTicketParams) IsEmpty() bool {
	return p.BookingID == nil && p.ScreeningID == nil && p.TicketType == nil && p.SeatRow == nil && p.SeatColumn == nil
}

// Apply returns a copy of t with p merged in.
func (p UpdateTicketParams) Apply(t *Ticket) *Ticket {
	merged := *t
	if p.BookingID != nil {
		merged.BookingID = *p.BookingID
	}
	if p.ScreeningID != nil {
		merged.ScreeningID = *p.ScreeningID
	}
	if p.TicketType != nil {
		merged.TicketType = *p.TicketType
	}
	if p.SeatRow != nil {
		merged.SeatRow = *p.SeatRow
	}
	if p.SeatColumn != nil {
		merged.SeatColumn = *p.SeatColumn
	}
	return &merged
}

// TicketFilter narrows GET /api/tickets; empty fields match everything.
type TicketFilter struct {
	ScreeningID string `form:"ScreeningID"`
	BookingID   string `form:"BookingID"`
}
