package booking

import "kinobilet-cli/model"

// StatusIndex resolves per-seat ticket records for one session.
type StatusIndex struct {
	bySeat map[string]model.Ticket
}

func NewStatusIndex(tickets []model.Ticket) StatusIndex {
	bySeat := make(map[string]model.Ticket, len(tickets))
	for _, ticket := range tickets {
		bySeat[ticket.SeatId] = ticket
	}
	return StatusIndex{bySeat: bySeat}
}

// TicketFor returns the ticket record for a seat, if one exists.
func (i StatusIndex) TicketFor(seatId string) (model.Ticket, bool) {
	ticket, ok := i.bySeat[seatId]
	return ticket, ok
}

// StatusFor derives the display status of a seat. A seat with no ticket
// record yet is treated as Available, not as an error.
func (i StatusIndex) StatusFor(seatId string) model.TicketStatus {
	if ticket, ok := i.bySeat[seatId]; ok && ticket.Status != "" {
		return ticket.Status
	}
	return model.TicketAvailable
}

func (i StatusIndex) Len() int {
	return len(i.bySeat)
}
