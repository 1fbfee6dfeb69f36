package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"kinobilet-cli/booking"
	"kinobilet-cli/model"
	"kinobilet-cli/service"
	"kinobilet-cli/store"
)

type appState int

const (
	stateLoadingFilms appState = iota
	stateSelectFilm
	stateLoadingSessions
	stateSelectSession
	stateSelectDate
	stateLoadingPlan
	stateSelectSeats
	stateReserving
	statePayment
	statePaying
	statePaid
	stateError
)

type appModel struct {
	client *service.Client
	token  string

	state     appState
	lastState appState
	err       error

	width  int
	height int

	films    []model.Film
	sessions []model.Session
	film     model.Film
	date     time.Time

	// fetchSeq stamps every in-flight fetch; responses carrying an older
	// stamp are discarded so a quick re-selection can never install stale
	// data over fresh data.
	fetchSeq int

	flow *booking.Flow

	grid   seatGrid
	cursor seatCursor

	filmList    list.Model
	sessionList list.Model
	dateList    list.Model

	payment      paymentForm
	reservations []booking.SeatReservation

	dateReturnState    appState
	dateReturnStateSet bool

	spinner spinner.Model
}

type filmsMsg struct {
	films []model.Film
	err   error
}

type sessionsMsg struct {
	seq      int
	sessions []model.Session
	err      error
}

type planMsg struct {
	seq     int
	plan    model.HallPlan
	tickets []model.Ticket
	err     error
}

type reserveMsg struct {
	results []booking.SeatReservation
	err     error
}

type payMsg struct {
	err error
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

func New(client *service.Client, token string) tea.Model {
	m := appModel{
		client: client,
		token:  token,
		state:  stateLoadingFilms,
		date:   booking.TruncateDate(time.Now()),
		flow:   booking.NewFlow(client),
	}

	m.filmList = newList("Select Film")
	m.sessionList = newList("Sessions")
	m.dateList = newList("Select Date")
	m.payment = newPaymentForm()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchFilmsCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == statePayment {
			return m.handlePaymentKey(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case filmsMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.films = msg.films
		m.filmList.SetItems(buildFilmItems(msg.films))
		m.state = stateSelectFilm
		return m, nil

	case sessionsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectFilm)
		}
		m.sessions = msg.sessions
		items := buildSessionItems(m.sessions, m.date)
		if len(items) == 0 {
			return m, errWithOptionsCmd(
				fmt.Errorf("no sessions for %q on %s", m.film.Title, m.date.Format(time.DateOnly)),
				stateSelectFilm,
			)
		}
		m.sessionList.Title = fmt.Sprintf("Sessions • %s", m.film.Title)
		m.sessionList.SetItems(items)
		m.state = stateSelectSession
		return m, nil

	case planMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectSession)
		}
		m.flow.SetPlan(msg.plan, msg.tickets)
		m.grid = newSeatGrid(msg.plan)
		m.cursor = m.cursor.clamp(m.grid)
		m.state = stateSelectSeats
		return m, nil

	case reserveMsg:
		m.reservations = msg.results
		if msg.err != nil {
			m.state = stateSelectSeats
			return m, errWithOptionsCmd(reserveFailure(msg.results, msg.err), stateSelectSeats)
		}
		m.payment = m.payment.Reset()
		m.state = statePayment
		return m, textinput.Blink
	case payMsg:
		if msg.err != nil {
			m.state = statePayment
			return m, errWithOptionsCmd(msg.err, statePayment)
		}
		m.payment = m.payment.Reset()
		m.state = statePaid
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectFilm:
		m.filmList, cmd = m.filmList.Update(msg)
	case stateSelectSession:
		m.sessionList, cmd = m.sessionList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case statePayment:
		m.payment, cmd = m.payment.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingFilms, stateLoadingSessions, stateLoadingPlan, stateReserving, statePaying:
		return header + "\n\n" + m.loadingView()
	case stateSelectFilm:
		return header + "\n\n" + m.filmList.View()
	case stateSelectSession:
		return header + "\n\n" + m.sessionList.View()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateSelectSeats:
		return header + "\n\n" + m.seatView()
	case statePayment:
		return header + "\n\n" + m.paymentView()
	case statePaid:
		return header + "\n\n" + m.paidView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Kinobilet")
	sub := []string{}
	if m.film.Title != "" {
		sub = append(sub, fmt.Sprintf("Film: %s", m.film.Title))
	}
	if !m.date.IsZero() && m.state != stateLoadingFilms {
		sub = append(sub, fmt.Sprintf("Date: %s", m.date.Format(time.DateOnly)))
	}
	if session := m.flow.Session(); session.Id != "" {
		switch m.state {
		case stateSelectSeats, stateReserving, statePayment, statePaying, statePaid:
			sub = append(sub, fmt.Sprintf("Session: %s • Hall %s", session.StartAt.Local().Format("15:04"), session.HallId))
		}
	}
	if m.token == "" {
		sub = append(sub, "Not logged in (run `kinobilet login`)")
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter • ctrl+d pick date"
	switch m.state {
	case stateSelectSeats:
		hints = "ctrl+c quit • esc back • arrows/hjkl move • space/x toggle seat • enter reserve • ctrl+d pick date"
	case statePayment:
		hints = "ctrl+c quit • esc cancel • tab next field • enter pay"
	case stateSelectDate:
		hints = "ctrl+c quit • esc back • enter select date"
	case statePaid:
		hints = "ctrl+c quit • esc back to seats • enter back to films"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) seatView() string {
	plan, ok := m.flow.Plan()
	if !ok {
		return "No hall plan loaded."
	}
	parts := []string{
		renderSeatMap(plan, m.flow, m.grid, m.cursor),
		seatLegend(plan),
	}
	if selected := m.flow.Selected(); len(selected) > 0 {
		parts = append(parts,
			"Selected: "+describeSelection(plan, selected),
			lipgloss.NewStyle().Bold(true).Render("Total: "+booking.FormatPrice(m.flow.TotalCents())),
		)
	} else {
		parts = append(parts, hint("Pick available seats, then press enter to reserve."))
	}
	return strings.Join(parts, "\n\n")
}

func (m appModel) paymentView() string {
	parts := []string{m.payment.View()}
	if purchase, ok := m.flow.Purchase(); ok {
		parts = append(parts, hint(fmt.Sprintf("Purchase %s • %d ticket(s) • %s",
			purchase.Id, len(purchase.TicketIds), booking.FormatPrice(m.flow.TotalCents()))))
	}
	if plan, ok := m.flow.Plan(); ok && len(m.reservations) > 0 {
		seatIds := make([]string, 0, len(m.reservations))
		for _, r := range m.reservations {
			if r.Err == nil {
				seatIds = append(seatIds, r.SeatId)
			}
		}
		parts = append(parts, hint("Reserved: "+describeSelection(plan, seatIds)))
	}
	return strings.Join(parts, "\n\n")
}

func (m appModel) paidView() string {
	check := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Render("Payment accepted.")
	return check + "\n\n" + hint("Your seats are confirmed. Press enter to book another film.")
}

func (m appModel) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// The purchase stays pending on the server; only the form closes.
		m.state = stateSelectSeats
		return m, nil
	case "tab", "down":
		m.payment = m.payment.Next()
		return m, nil
	case "shift+tab", "up":
		m.payment = m.payment.Prev()
		return m, nil
	case "enter":
		if err := m.payment.Validate(); err != nil {
			return m, errWithOptionsCmd(err, statePayment)
		}
		m.state = statePaying
		return m, tea.Batch(m.payCmd(m.payment.Card()), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.payment, cmd = m.payment.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		model, cmd := m.goBack()
		return model, cmd, true
	case "up", "k":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.move(m.grid, -1, 0)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.move(m.grid, 1, 0)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.move(m.grid, 0, -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.move(m.grid, 0, 1)
			return m, nil, true
		}
	case " ", "x":
		if m.state == stateSelectSeats {
			return m.toggleSeatUnderCursor()
		}
	}

	if msg.String() == "ctrl+d" && (m.state == stateSelectFilm || m.state == stateSelectSession || m.state == stateSelectSeats) {
		m.openDatePicker(m.state)
		return m, nil, true
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectFilm:
			item, ok := m.filmList.SelectedItem().(filmItem)
			if !ok {
				return m, nil, true
			}
			m.film = item.film
			_ = store.RememberFilm(m.film)
			m.fetchSeq++
			m.state = stateLoadingSessions
			return m, tea.Batch(m.fetchSessionsCmd(m.fetchSeq, m.film.Id), m.spinner.Tick), true
		case stateSelectSession:
			item, ok := m.sessionList.SelectedItem().(sessionItem)
			if !ok {
				return m, nil, true
			}
			m.flow.SetSession(item.session)
			m.cursor = seatCursor{}
			m.fetchSeq++
			m.state = stateLoadingPlan
			return m, tea.Batch(m.fetchPlanCmd(m.fetchSeq, item.session), m.spinner.Tick), true
		case stateSelectSeats:
			return m.startReservation()
		case stateSelectDate:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			m.date = item.date
			m.dateReturnStateSet = false
			if m.film.Id == "" {
				m.state = stateSelectFilm
				return m, nil, true
			}
			m.fetchSeq++
			m.state = stateLoadingSessions
			return m, tea.Batch(m.fetchSessionsCmd(m.fetchSeq, m.film.Id), m.spinner.Tick), true
		case statePaid:
			m.film = model.Film{}
			m.flow.SetSession(model.Session{})
			m.state = stateSelectFilm
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) toggleSeatUnderCursor() (tea.Model, tea.Cmd, bool) {
	seat, ok := m.grid.seatAt(m.cursor.row, m.cursor.col)
	if !ok {
		return m, nil, true
	}
	if err := m.flow.ToggleSeat(seat.Id); err != nil {
		if errors.Is(err, booking.ErrSeatUnavailable) {
			// A blocked toggle is visible from the seat colors already.
			return m, nil, true
		}
		return m, errWithOptionsCmd(err, stateSelectSeats), true
	}
	return m, nil, true
}

func (m appModel) startReservation() (tea.Model, tea.Cmd, bool) {
	if m.token == "" {
		return m, errWithOptionsCmd(booking.ErrNoAuthToken, stateSelectSeats), true
	}
	if len(m.flow.Selected()) == 0 {
		return m, errWithOptionsCmd(booking.ErrEmptySelection, stateSelectSeats), true
	}
	m.state = stateReserving
	return m, tea.Batch(m.reserveCmd(), m.spinner.Tick), true
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSelectSession:
		m.state = stateSelectFilm
	case stateSelectSeats:
		m.state = stateSelectSession
	case statePaid:
		m.state = stateSelectSeats
	case stateSelectDate:
		if m.dateReturnStateSet {
			m.state = m.dateReturnState
			m.dateReturnStateSet = false
		} else {
			m.state = stateSelectFilm
		}
	case stateError:
		m.state = m.lastState
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func (m *appModel) openDatePicker(returnState appState) {
	m.dateReturnState = returnState
	m.dateReturnStateSet = true
	m.state = stateSelectDate
	m.dateList.SetItems(buildDateItems(booking.TruncateDate(time.Now())))
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectFilm:
		return &m.filmList
	case stateSelectSession:
		return &m.sessionList
	case stateSelectDate:
		return &m.dateList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingFilms, stateLoadingSessions, stateLoadingPlan, stateReserving, statePaying:
		return true
	}
	return false
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingFilms:
		title = "Loading films"
	case stateLoadingSessions:
		title = "Loading sessions"
	case stateLoadingPlan:
		title = "Loading hall plan"
	case stateReserving:
		title = "Reserving seats"
	case statePaying:
		title = "Processing payment"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Talking to the box office..."))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.filmList.SetSize(m.width, h)
	m.sessionList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithOptionsCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingFilms:
		return stateSelectFilm
	case stateLoadingSessions:
		return stateSelectFilm
	case stateLoadingPlan:
		return stateSelectSession
	case stateReserving:
		return stateSelectSeats
	case statePaying:
		return statePayment
	case stateError:
		return stateSelectFilm
	default:
		return state
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

// reserveFailure folds the per-seat results into one message the error
// screen can show.
func reserveFailure(results []booking.SeatReservation, err error) error {
	reserved := 0
	for _, r := range results {
		if r.Err == nil {
			reserved++
		}
	}
	if reserved == 0 {
		return fmt.Errorf("reservation failed: %w", err)
	}
	return fmt.Errorf("reservation failed after %d seat(s) were already reserved: %w", reserved, err)
}

func (m appModel) fetchFilmsCmd() tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadFilmCache(); err == nil && fresh && len(cached) > 0 {
			return filmsMsg{films: cached}
		}
		ctx := context.Background()
		films, err := m.client.Films(ctx, service.DefaultPage, service.FilmPageSize)
		if err == nil && len(films) > 0 {
			_ = store.SaveFilmCache(films)
		}
		return filmsMsg{films: films, err: err}
	}
}

func (m appModel) fetchSessionsCmd(seq int, filmId string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := m.client.Sessions(ctx, filmId)
		if err != nil {
			if service.IsNotFound(err) {
				return sessionsMsg{seq: seq}
			}
			return sessionsMsg{seq: seq, err: err}
		}
		return sessionsMsg{seq: seq, sessions: sessions}
	}
}

// fetchPlanCmd loads the hall layout and the session's ticket list in
// parallel; the flow only ever sees both together.
func (m appModel) fetchPlanCmd(seq int, session model.Session) tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var plan model.HallPlan
		var tickets []model.Ticket

		g.Go(func() error {
			var err error
			plan, err = m.client.HallPlan(ctx, session.HallId)
			return err
		})
		g.Go(func() error {
			var err error
			tickets, err = m.client.SessionTickets(ctx, session.Id)
			return err
		})

		if err := g.Wait(); err != nil {
			return planMsg{seq: seq, err: err}
		}
		return planMsg{seq: seq, plan: plan, tickets: tickets}
	}
}

func (m appModel) reserveCmd() tea.Cmd {
	flow, token := m.flow, m.token
	return func() tea.Msg {
		results, err := flow.Reserve(context.Background(), token)
		return reserveMsg{results: results, err: err}
	}
}

func (m appModel) payCmd(card model.CardDetails) tea.Cmd {
	flow, token := m.flow, m.token
	return func() tea.Msg {
		err := flow.Pay(context.Background(), token, card)
		return payMsg{err: err}
	}
}
