package booking

import (
	"fmt"

	"kinobilet-cli/model"
)

// TotalCents sums category prices over the selected seat ids. Seats or
// categories that do not resolve against the plan contribute zero. All
// amounts are minor currency units; FormatPrice is the display boundary.
func TotalCents(plan model.HallPlan, seatIds []string) int {
	total := 0
	for _, seatId := range seatIds {
		seat, ok := plan.SeatById(seatId)
		if !ok {
			continue
		}
		category, ok := plan.CategoryById(seat.CategoryId)
		if !ok {
			continue
		}
		total += category.PriceCents
	}
	return total
}

// FormatPrice renders a minor-unit amount as a major-unit string.
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d ₽", sign, cents/100, cents%100)
}
