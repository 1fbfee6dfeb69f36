package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kinobilet-cli/booking"
	"kinobilet-cli/model"
)

// seatGrid is the hall plan arranged for rendering and cursor movement:
// rows in ascending order, seats within a row ordered by number.
type seatGrid struct {
	rows [][]model.Seat
}

func newSeatGrid(plan model.HallPlan) seatGrid {
	byRow := map[int][]model.Seat{}
	for _, seat := range plan.Seats {
		byRow[seat.Row] = append(byRow[seat.Row], seat)
	}

	var rowNums []int
	for row := range byRow {
		rowNums = append(rowNums, row)
	}
	sort.Ints(rowNums)

	rows := make([][]model.Seat, 0, len(rowNums))
	for _, row := range rowNums {
		seats := byRow[row]
		sort.Slice(seats, func(i, j int) bool {
			return seats[i].Number < seats[j].Number
		})
		rows = append(rows, seats)
	}
	return seatGrid{rows: rows}
}

func (g seatGrid) empty() bool {
	return len(g.rows) == 0
}

// seatAt returns the seat under a cursor position.
func (g seatGrid) seatAt(row int, col int) (model.Seat, bool) {
	if row < 0 || row >= len(g.rows) {
		return model.Seat{}, false
	}
	seats := g.rows[row]
	if col < 0 || col >= len(seats) {
		return model.Seat{}, false
	}
	return seats[col], true
}

type seatCursor struct {
	row int
	col int
}

// clamp keeps the cursor on an existing seat after any movement or a
// grid change.
func (c seatCursor) clamp(g seatGrid) seatCursor {
	if g.empty() {
		return seatCursor{}
	}
	if c.row < 0 {
		c.row = 0
	}
	if c.row >= len(g.rows) {
		c.row = len(g.rows) - 1
	}
	if c.col < 0 {
		c.col = 0
	}
	if max := len(g.rows[c.row]) - 1; c.col > max {
		c.col = max
	}
	return c
}

func (c seatCursor) move(g seatGrid, dRow int, dCol int) seatCursor {
	c.row += dRow
	c.col += dCol
	return c.clamp(g)
}

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleVIP       = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Bold(true)
	seatStyleReserved  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	seatStyleSold      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleCursor    = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// renderSeatMap draws the hall with the screen bar on top, one line per
// row, and per-seat coloring by derived status.
func renderSeatMap(plan model.HallPlan, flow *booking.Flow, grid seatGrid, cursor seatCursor) string {
	if grid.empty() {
		return "No hall plan data."
	}

	cellWidth := 2
	for _, row := range grid.rows {
		for _, seat := range row {
			if l := len(fmt.Sprintf("%d", seat.Number)); l > cellWidth {
				cellWidth = l
			}
		}
	}

	rowWidth := len(fmt.Sprintf("%d", len(grid.rows)))
	gridWidth := 0
	for _, row := range grid.rows {
		if w := len(row)*(cellWidth+1) - 1; w > gridWidth {
			gridWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBar(gridWidth))
	b.WriteString("\n\n")

	for r, row := range grid.rows {
		// Rows are 0-based on the wire, 1-based on screen.
		label := fmt.Sprintf("%*d", rowWidth, row[0].Row+1)
		b.WriteString(label + " ")
		for c, seat := range row {
			text := padCell(fmt.Sprintf("%d", seat.Number), cellWidth)
			style := seatStyle(plan, flow, seat)
			if cursor.row == r && cursor.col == c {
				style = seatStyleCursor
			}
			b.WriteString(style.Render(text))
			if c < len(row)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func seatStyle(plan model.HallPlan, flow *booking.Flow, seat model.Seat) lipgloss.Style {
	if flow.IsSelected(seat.Id) {
		return seatStyleSelected
	}
	switch flow.StatusFor(seat.Id) {
	case model.TicketSold:
		return seatStyleSold
	case model.TicketReserved:
		return seatStyleReserved
	}
	if category, ok := plan.CategoryById(seat.CategoryId); ok && category.IsVIP() {
		return seatStyleVIP
	}
	return seatStyleAvailable
}

func seatLegend(plan model.HallPlan) string {
	parts := []string{
		seatStyleAvailable.Render("free"),
		seatStyleVIP.Render("vip"),
		seatStyleSelected.Render("chosen"),
		seatStyleReserved.Render("reserved"),
		seatStyleSold.Render("sold"),
	}
	var priced []string
	for _, category := range plan.Categories {
		priced = append(priced, fmt.Sprintf("%s %s", category.Name, booking.FormatPrice(category.PriceCents)))
	}
	legend := strings.Join(parts, " • ")
	if len(priced) > 0 {
		legend += "\n" + hint(strings.Join(priced, " • "))
	}
	return legend
}

// describeSelection lists the chosen seats as "Row 1, #2 (VIP — 5.00 ₽)".
func describeSelection(plan model.HallPlan, seatIds []string) string {
	var parts []string
	for _, seatId := range seatIds {
		seat, ok := plan.SeatById(seatId)
		if !ok {
			continue
		}
		price := 0
		name := "Seat"
		if category, ok := plan.CategoryById(seat.CategoryId); ok {
			price = category.PriceCents
			name = category.Name
		}
		parts = append(parts, fmt.Sprintf("Row %d, #%d (%s — %s)", seat.Row+1, seat.Number, name, booking.FormatPrice(price)))
	}
	return strings.Join(parts, "; ")
}

func screenBar(width int) string {
	const label = " SCREEN "
	if width < len(label)+2 {
		width = len(label) + 2
	}
	padding := width - len(label)
	left := padding / 2
	right := padding - left
	bar := strings.Repeat("─", left) + label + strings.Repeat("─", right)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(bar)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
