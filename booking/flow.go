package booking

import (
	"context"
	"errors"

	"kinobilet-cli/logging"
	"kinobilet-cli/model"
)

// Phase tracks where the booking flow stands for the current session.
type Phase int

const (
	PhaseNoSelection Phase = iota
	PhaseSelecting
	PhaseReserving
	PhaseAwaitingPayment
	PhasePaid
)

func (p Phase) String() string {
	switch p {
	case PhaseNoSelection:
		return "no-selection"
	case PhaseSelecting:
		return "selecting"
	case PhaseReserving:
		return "reserving"
	case PhaseAwaitingPayment:
		return "awaiting-payment"
	case PhasePaid:
		return "paid"
	default:
		return "unknown"
	}
}

var (
	ErrNoAuthToken      = errors.New("authentication required")
	ErrNoActivePurchase = errors.New("no active purchase")
	ErrNoPlan           = errors.New("hall plan not loaded")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrSelectionLocked  = errors.New("selection is locked while a reservation is in progress")
	ErrEmptySelection   = errors.New("no seats selected")
	ErrNoTicketRecord   = errors.New("no ticket record for seat")
)

// API is the slice of the remote service the flow depends on.
type API interface {
	SessionTickets(ctx context.Context, sessionId string) ([]model.Ticket, error)
	ReserveTicket(ctx context.Context, token string, ticketId string) error
	CreatePurchase(ctx context.Context, token string, ticketIds []string) (model.Purchase, error)
	ProcessPayment(ctx context.Context, token string, payment model.PaymentRequest) error
}

// SeatReservation is the per-seat outcome of a reserve pass. Seats the
// pass never reached (after an abort) carry no entry at all.
type SeatReservation struct {
	SeatId   string
	TicketId string
	Err      error
}

// Flow holds the transient view state of one booking attempt. It is not
// safe for concurrent mutation; callers must run at most one operation
// against it at a time.
type Flow struct {
	api API

	session model.Session
	plan    model.HallPlan
	planSet bool
	tickets StatusIndex

	selection Selection

	purchase    model.Purchase
	purchaseSet bool

	phase Phase
}

func NewFlow(api API) *Flow {
	return &Flow{api: api, tickets: NewStatusIndex(nil)}
}

func (f *Flow) Phase() Phase { return f.phase }

func (f *Flow) Session() model.Session { return f.session }

// SetSession switches the flow to a new session. Selection, plan and any
// pending purchase are dropped before any new data loads, so stale
// selections can never leak across sessions.
func (f *Flow) SetSession(session model.Session) {
	f.session = session
	f.plan = model.HallPlan{}
	f.planSet = false
	f.tickets = NewStatusIndex(nil)
	f.selection.Clear()
	f.purchase = model.Purchase{}
	f.purchaseSet = false
	f.phase = PhaseNoSelection
}

// SetPlan installs the hall layout and ticket list fetched for the
// current session. Both halves arrive together or not at all.
func (f *Flow) SetPlan(plan model.HallPlan, tickets []model.Ticket) {
	f.plan = plan
	f.planSet = true
	f.tickets = NewStatusIndex(tickets)
}

func (f *Flow) Plan() (model.HallPlan, bool) {
	return f.plan, f.planSet
}

func (f *Flow) Tickets() StatusIndex { return f.tickets }

// StatusFor derives the display status of a seat in the current session.
func (f *Flow) StatusFor(seatId string) model.TicketStatus {
	return f.tickets.StatusFor(seatId)
}

func (f *Flow) Selected() []string { return f.selection.Ids() }

func (f *Flow) IsSelected(seatId string) bool { return f.selection.Has(seatId) }

// ToggleSeat is the single entry point for changing the selection. Only
// seats whose derived status is Available may enter the set; removing a
// seat is always allowed.
func (f *Flow) ToggleSeat(seatId string) error {
	switch f.phase {
	case PhaseReserving, PhaseAwaitingPayment:
		return ErrSelectionLocked
	}
	if !f.planSet {
		return ErrNoPlan
	}
	if !f.selection.Has(seatId) && f.tickets.StatusFor(seatId) != model.TicketAvailable {
		return ErrSeatUnavailable
	}
	f.selection.Toggle(seatId)
	if f.selection.Len() == 0 {
		f.phase = PhaseNoSelection
	} else {
		f.phase = PhaseSelecting
	}
	return nil
}

// TotalCents is the price of the current selection, recomputed on demand.
func (f *Flow) TotalCents() int {
	return TotalCents(f.plan, f.selection.Ids())
}

func (f *Flow) Purchase() (model.Purchase, bool) {
	return f.purchase, f.purchaseSet
}

// Reserve walks the selection in order, reserving one ticket per seat,
// then bundles the reserved ticket ids into a purchase. The token is
// passed explicitly; an empty token aborts before any network call. A
// reserve failure stops the walk and leaves already-reserved seats
// reserved — the API offers no compensating release — so the per-seat
// results tell the caller exactly how far the pass got.
func (f *Flow) Reserve(ctx context.Context, token string) ([]SeatReservation, error) {
	if token == "" {
		return nil, ErrNoAuthToken
	}
	if f.selection.Len() == 0 {
		return nil, ErrEmptySelection
	}
	if f.phase != PhaseSelecting {
		return nil, ErrSelectionLocked
	}

	f.phase = PhaseReserving
	results := make([]SeatReservation, 0, f.selection.Len())
	ticketIds := make([]string, 0, f.selection.Len())

	for _, seatId := range f.selection.Ids() {
		ticket, ok := f.tickets.TicketFor(seatId)
		if !ok {
			results = append(results, SeatReservation{SeatId: seatId, Err: ErrNoTicketRecord})
			continue
		}
		if err := f.api.ReserveTicket(ctx, token, ticket.Id); err != nil {
			results = append(results, SeatReservation{SeatId: seatId, TicketId: ticket.Id, Err: err})
			f.phase = PhaseSelecting
			return results, err
		}
		results = append(results, SeatReservation{SeatId: seatId, TicketId: ticket.Id})
		ticketIds = append(ticketIds, ticket.Id)
	}

	if len(ticketIds) == 0 {
		f.phase = PhaseSelecting
		return results, ErrNoTicketRecord
	}

	purchase, err := f.api.CreatePurchase(ctx, token, ticketIds)
	if err != nil {
		f.phase = PhaseSelecting
		return results, err
	}

	f.purchase = purchase
	f.purchaseSet = true
	f.phase = PhaseAwaitingPayment
	return results, nil
}

// Pay submits card details for the active purchase. On success the
// purchase and selection are cleared and the session's ticket list is
// re-fetched so seat statuses reflect the now-sold seats. On failure
// nothing changes and the caller may retry.
func (f *Flow) Pay(ctx context.Context, token string, card model.CardDetails) error {
	if token == "" {
		return ErrNoAuthToken
	}
	if !f.purchaseSet {
		return ErrNoActivePurchase
	}

	payment := model.PaymentRequest{
		PurchaseId:     f.purchase.Id,
		CardNumber:     card.CardNumber,
		ExpiryDate:     card.ExpiryDate,
		CVV:            card.CVV,
		CardHolderName: card.CardHolderName,
	}
	if err := f.api.ProcessPayment(ctx, token, payment); err != nil {
		return err
	}

	f.purchase = model.Purchase{}
	f.purchaseSet = false
	f.selection.Clear()
	f.phase = PhasePaid

	tickets, err := f.api.SessionTickets(ctx, f.session.Id)
	if err != nil {
		// Payment already went through; a stale seat map is the worst case.
		logging.L().WithField("session", f.session.Id).WithError(err).Warn("ticket refresh after payment failed")
		return nil
	}
	f.tickets = NewStatusIndex(tickets)
	return nil
}
