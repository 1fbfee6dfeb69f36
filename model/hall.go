package model

import "strings"

type Hall struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// HallPlan is the fixed seating layout of a hall: seats plus the
// categories they belong to. It does not change during a booking flow.
type HallPlan struct {
	HallId     string         `json:"hallId"`
	Rows       int            `json:"rows"`
	Seats      []Seat         `json:"seats"`
	Categories []SeatCategory `json:"categories"`
}

// Seat rows are 0-based, seat numbers 1-based within their row.
type Seat struct {
	Id         string `json:"id"`
	Row        int    `json:"row"`
	Number     int    `json:"number"`
	CategoryId string `json:"categoryId"`
}

// SeatCategory carries the price in minor currency units (cents).
type SeatCategory struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"priceCents"`
}

// IsVIP reports whether the category is a VIP one. The API has no
// dedicated flag; VIP is detected by name substring.
func (c SeatCategory) IsVIP() bool {
	return strings.Contains(strings.ToLower(c.Name), "vip")
}

// SeatById returns the seat record for an id, if present in the plan.
func (p HallPlan) SeatById(seatId string) (Seat, bool) {
	for _, seat := range p.Seats {
		if seat.Id == seatId {
			return seat, true
		}
	}
	return Seat{}, false
}

// CategoryById returns the category record for an id, if present.
func (p HallPlan) CategoryById(categoryId string) (SeatCategory, bool) {
	for _, category := range p.Categories {
		if category.Id == categoryId {
			return category, true
		}
	}
	return SeatCategory{}, false
}
