package model

type TicketStatus string

const (
	TicketAvailable TicketStatus = "AVAILABLE"
	TicketReserved  TicketStatus = "RESERVED"
	TicketSold      TicketStatus = "SOLD"
)

// Ticket is the per-seat, per-session booking record. There is exactly
// one ticket per seat per session; its status drives seat selectability.
type Ticket struct {
	Id         string       `json:"id"`
	SeatId     string       `json:"seatId"`
	CategoryId string       `json:"categoryId"`
	Status     TicketStatus `json:"status"`
	PriceCents int          `json:"priceCents"`
}
