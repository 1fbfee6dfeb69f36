package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"kinobilet-cli/booking"
	"kinobilet-cli/model"
	"kinobilet-cli/store"
)

type filmItem struct {
	film   model.Film
	recent bool
}

func (f filmItem) Title() string {
	return f.film.Title
}

func (f filmItem) Description() string {
	parts := []string{}
	if f.recent {
		parts = append(parts, "Recent")
	}
	if f.film.Genre != "" {
		parts = append(parts, f.film.Genre)
	}
	if f.film.DurationMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", f.film.DurationMinutes))
	}
	if f.film.AgeRating != "" {
		parts = append(parts, f.film.AgeRating)
	}
	return strings.Join(parts, " • ")
}

func (f filmItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{f.film.Title, f.film.Genre}, " "))
}

func buildFilmItems(films []model.Film) []list.Item {
	recents, _ := store.LoadRecentFilms()
	byID := map[string]model.Film{}
	for _, film := range films {
		byID[film.Id] = film
	}

	var items []list.Item
	used := map[string]bool{}
	for _, recent := range recents {
		if film, ok := byID[recent.ID]; ok && !used[film.Id] {
			items = append(items, filmItem{film: film, recent: true})
			used[film.Id] = true
		}
	}

	remaining := make([]model.Film, 0, len(films))
	for _, film := range films {
		if !used[film.Id] {
			remaining = append(remaining, film)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return strings.ToLower(remaining[i].Title) < strings.ToLower(remaining[j].Title)
	})
	for _, film := range remaining {
		items = append(items, filmItem{film: film})
	}
	return items
}

type sessionItem struct {
	session model.Session
}

func (s sessionItem) Title() string {
	return s.session.StartAt.Local().Format("15:04")
}

func (s sessionItem) Description() string {
	return fmt.Sprintf("Hall %s • %s", s.session.HallId, s.session.StartAt.Local().Format(time.DateOnly))
}

func (s sessionItem) FilterValue() string {
	return strings.ToLower(s.session.StartAt.Local().Format("15:04") + " " + s.session.HallId)
}

func buildSessionItems(sessions []model.Session, day time.Time) []list.Item {
	filtered := booking.FilterByDay(sessions, day)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].StartAt.Before(filtered[j].StartAt)
	})
	items := make([]list.Item, 0, len(filtered))
	for _, session := range filtered {
		items = append(items, sessionItem{session: session})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if booking.SameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time) []list.Item {
	start := booking.TruncateDate(base)
	items := make([]list.Item, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, dateItem{date: start.AddDate(0, 0, i)})
	}
	return items
}
