package model

type TicketType struct {
	ID   string  `json:"TicketTypeID"`
	Name string  `json:"Name"`
	Cost float64 `json:"Cost"`
}

type CreateTicketTypeRequest struct {
	TicketTypeID string   `json:"ticketTypeID"`
	Name         string   `json:"Name" binding:"required"`
	Cost         *float64 `json:"Cost" binding:"required,gte=0"`
}

type UpdateTicketTypeParams struct {
	Name *string  `json:"Name" binding:"omitempty,min=1"`
	Cost *float64 `json:"Cost" binding:"omitempty,gte=0"`
}

func (p UpdateTicketTypeParams) IsEmpty() bool {
	return p.Name == nil && p.Cost == nil
}
