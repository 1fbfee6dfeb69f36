package model

import "time"

// Session is a single scheduled showing of a film in a hall.
type Session struct {
	Id      string    `json:"id"`
	FilmId  string    `json:"filmId"`
	HallId  string    `json:"hallId"`
	StartAt time.Time `json:"startAt"`
}
