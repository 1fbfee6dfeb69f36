package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"kinobilet-cli/model"
)

type testItem struct {
	value string
}

func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }
func (t testItem) FilterValue() string { return strings.ToLower(t.value) }

func newFilterModel(items []list.Item) *appModel {
	m := New(nil, "").(appModel)
	m.state = stateSelectFilm
	m.filmList = newList("Select Film")
	m.filmList.SetItems(items)
	return &m
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Solaris"},
		testItem{value: "Stalker"},
	})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.filmList.FilterValue(); got != "s" {
		t.Fatalf("expected filter value to be %q, got %q", "s", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.filmList.FilterValue(); got != "so" {
		t.Fatalf("expected filter value to be %q, got %q", "so", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Solaris"},
		testItem{value: "Stalker"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})

	if got := m.filmList.FilterValue(); got != "so" {
		t.Fatalf("expected filter value to be %q, got %q", "so", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.filmList.FilterValue(); got != "s" {
		t.Fatalf("expected filter value to be %q, got %q", "s", got)
	}
}

func testPlan() model.HallPlan {
	return model.HallPlan{
		HallId: "h1",
		Rows:   2,
		Seats: []model.Seat{
			{Id: "seat1", Row: 0, Number: 1, CategoryId: "c1"},
			{Id: "seat2", Row: 0, Number: 2, CategoryId: "c1"},
			{Id: "seat3", Row: 1, Number: 1, CategoryId: "c2"},
		},
		Categories: []model.SeatCategory{
			{Id: "c1", Name: "Standard", PriceCents: 30000},
			{Id: "c2", Name: "VIP", PriceCents: 50000},
		},
	}
}

func TestSeatGrid_RowsAndColumnsAreOrdered(t *testing.T) {
	plan := testPlan()
	// shuffle the input order; the grid must not depend on it
	plan.Seats = []model.Seat{plan.Seats[2], plan.Seats[1], plan.Seats[0]}

	grid := newSeatGrid(plan)
	if len(grid.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(grid.rows))
	}
	if grid.rows[0][0].Id != "seat1" || grid.rows[0][1].Id != "seat2" {
		t.Fatalf("unexpected first row: %+v", grid.rows[0])
	}
	if grid.rows[1][0].Id != "seat3" {
		t.Fatalf("unexpected second row: %+v", grid.rows[1])
	}
}

func TestSeatCursor_ClampsToGrid(t *testing.T) {
	grid := newSeatGrid(testPlan())

	c := seatCursor{row: 0, col: 0}
	c = c.move(grid, 0, 5)
	if c.col != 1 {
		t.Fatalf("expected cursor clamped to col 1, got %d", c.col)
	}
	c = c.move(grid, 5, 0)
	if c.row != 1 {
		t.Fatalf("expected cursor clamped to row 1, got %d", c.row)
	}
	// row 1 has a single seat
	if c.col != 0 {
		t.Fatalf("expected cursor clamped to col 0 on short row, got %d", c.col)
	}
	c = c.move(grid, -5, -5)
	if c.row != 0 || c.col != 0 {
		t.Fatalf("expected cursor at origin, got %+v", c)
	}
}

func TestStaleSessionsMsgIsDiscarded(t *testing.T) {
	m := New(nil, "").(appModel)
	m.state = stateLoadingSessions
	m.fetchSeq = 2

	updated, _ := m.Update(sessionsMsg{seq: 1, sessions: []model.Session{{Id: "old"}}})
	got := updated.(appModel)
	if got.state != stateLoadingSessions {
		t.Fatalf("expected stale message to be ignored, state is %v", got.state)
	}
	if len(got.sessions) != 0 {
		t.Fatal("expected stale sessions not to be installed")
	}
}

func TestStalePlanMsgIsDiscarded(t *testing.T) {
	m := New(nil, "").(appModel)
	m.state = stateLoadingPlan
	m.fetchSeq = 3

	updated, _ := m.Update(planMsg{seq: 2, plan: testPlan()})
	got := updated.(appModel)
	if got.state != stateLoadingPlan {
		t.Fatalf("expected stale plan to be ignored, state is %v", got.state)
	}
	if _, ok := got.flow.Plan(); ok {
		t.Fatal("expected stale plan not to be installed")
	}
}

func TestPaymentForm_Validate(t *testing.T) {
	form := newPaymentForm()
	form.inputs[fieldCardNumber].SetValue("4111 1111 1111 1111")
	form.inputs[fieldExpiry].SetValue("12/30")
	form.inputs[fieldCVV].SetValue("123")
	form.inputs[fieldHolder].SetValue("IVAN IVANOV")

	if err := form.Validate(); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	card := form.Card()
	if card.CardNumber != "4111111111111111" {
		t.Fatalf("expected spaces stripped, got %q", card.CardNumber)
	}

	form.inputs[fieldExpiry].SetValue("1230")
	if err := form.Validate(); err == nil {
		t.Fatal("expected expiry format error")
	}
}

func TestPaymentForm_ResetClearsValues(t *testing.T) {
	form := newPaymentForm()
	form.inputs[fieldCardNumber].SetValue("4111111111111111")
	form = form.Next()

	form = form.Reset()
	if form.inputs[fieldCardNumber].Value() != "" {
		t.Fatal("expected card number to be cleared")
	}
	if form.focus != fieldCardNumber {
		t.Fatalf("expected focus back on card number, got %d", form.focus)
	}
}
