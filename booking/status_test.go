package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kinobilet-cli/model"
)

func TestStatusIndex_DerivesStatusPerSeat(t *testing.T) {
	index := NewStatusIndex([]model.Ticket{
		{Id: "t1", SeatId: "seat1", Status: model.TicketSold},
		{Id: "t2", SeatId: "seat2", Status: model.TicketReserved},
		{Id: "t3", SeatId: "seat3", Status: model.TicketAvailable},
	})

	assert.Equal(t, model.TicketSold, index.StatusFor("seat1"))
	assert.Equal(t, model.TicketReserved, index.StatusFor("seat2"))
	assert.Equal(t, model.TicketAvailable, index.StatusFor("seat3"))
}

func TestStatusIndex_MissingRecordDefaultsToAvailable(t *testing.T) {
	index := NewStatusIndex(nil)
	assert.Equal(t, model.TicketAvailable, index.StatusFor("seat1"))

	ticket, ok := index.TicketFor("seat1")
	assert.False(t, ok)
	assert.Empty(t, ticket.Id)
}

func TestStatusIndex_EmptyStatusDefaultsToAvailable(t *testing.T) {
	index := NewStatusIndex([]model.Ticket{{Id: "t1", SeatId: "seat1"}})
	assert.Equal(t, model.TicketAvailable, index.StatusFor("seat1"))
}
