package model

type Film struct {
	Id              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Genre           string `json:"genre"`
	DurationMinutes int    `json:"durationMinutes"`
	AgeRating       string `json:"ageRating"`
	ImageUrl        string `json:"imageUrl"`
}
