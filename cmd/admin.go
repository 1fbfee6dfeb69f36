package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"kinobilet-cli/booking"
	"kinobilet-cli/service"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage films, halls, seat categories and sessions",
}

var adminFilmsCmd = &cobra.Command{
	Use:   "films",
	Short: "Manage the film catalog",
}

var adminFilmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List films",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		films, err := client.Films(context.Background(), service.DefaultPage, service.AdminFilmPageSize)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Title", "Genre", "Duration", "Rating"})
		for _, film := range films {
			t.AppendRow(table.Row{film.Id, film.Title, film.Genre, fmt.Sprintf("%d min", film.DurationMinutes), film.AgeRating})
		}
		t.Render()
		return nil
	},
}

var adminFilmsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a film to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		title, err := promptText("Title", false)
		if err != nil {
			return err
		}
		description, err := promptText("Description", false)
		if err != nil {
			return err
		}
		genre, err := promptText("Genre", false)
		if err != nil {
			return err
		}
		durationText, err := promptText("Duration (minutes)", false)
		if err != nil {
			return err
		}
		duration, err := strconv.Atoi(durationText)
		if err != nil {
			return fmt.Errorf("duration must be a number: %w", err)
		}
		rating, err := promptSelect("Age rating", []string{"0+", "6+", "12+", "16+", "18+"})
		if err != nil {
			return err
		}

		film, err := client.CreateFilm(context.Background(), token, service.FilmInput{
			Title:           title,
			Description:     description,
			Genre:           genre,
			DurationMinutes: duration,
			AgeRating:       rating,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created film %s (%s)\n", film.Title, film.Id)
		return nil
	},
}

var adminFilmsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a film",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		filmId, err := pickFilm(client)
		if err != nil {
			return err
		}
		title, err := promptText("Title", false)
		if err != nil {
			return err
		}
		description, err := promptText("Description", false)
		if err != nil {
			return err
		}
		genre, err := promptText("Genre", false)
		if err != nil {
			return err
		}
		durationText, err := promptText("Duration (minutes)", false)
		if err != nil {
			return err
		}
		duration, err := strconv.Atoi(durationText)
		if err != nil {
			return fmt.Errorf("duration must be a number: %w", err)
		}
		rating, err := promptSelect("Age rating", []string{"0+", "6+", "12+", "16+", "18+"})
		if err != nil {
			return err
		}

		film, err := client.UpdateFilm(context.Background(), token, filmId, service.FilmInput{
			Title:           title,
			Description:     description,
			Genre:           genre,
			DurationMinutes: duration,
			AgeRating:       rating,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Updated film %s\n", film.Title)
		return nil
	},
}

var adminFilmsRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a film",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		filmId, err := pickFilm(client)
		if err != nil {
			return err
		}
		if err := client.DeleteFilm(context.Background(), token, filmId); err != nil {
			return err
		}
		fmt.Println("Film removed")
		return nil
	},
}

var adminCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage seat categories",
}

var adminCategoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List seat categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		categories, err := client.SeatCategories(context.Background(), service.DefaultPage, service.AdminCategoryPageSize)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "Price"})
		for _, category := range categories {
			t.AppendRow(table.Row{category.Id, category.Name, booking.FormatPrice(category.PriceCents)})
		}
		t.Render()
		return nil
	},
}

var adminCategoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a seat category",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		name, err := promptText("Name", false)
		if err != nil {
			return err
		}
		priceText, err := promptText("Price (cents)", false)
		if err != nil {
			return err
		}
		price, err := strconv.Atoi(priceText)
		if err != nil {
			return fmt.Errorf("price must be a whole number of cents: %w", err)
		}

		category, err := client.CreateSeatCategory(context.Background(), token, service.CategoryInput{
			Name:       name,
			PriceCents: price,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created category %s at %s\n", category.Name, booking.FormatPrice(category.PriceCents))
		return nil
	},
}

var adminCategoriesEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a seat category",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		categoryId, err := pickCategory(client)
		if err != nil {
			return err
		}
		name, err := promptText("Name", false)
		if err != nil {
			return err
		}
		priceText, err := promptText("Price (cents)", false)
		if err != nil {
			return err
		}
		price, err := strconv.Atoi(priceText)
		if err != nil {
			return fmt.Errorf("price must be a whole number of cents: %w", err)
		}

		category, err := client.UpdateSeatCategory(context.Background(), token, categoryId, service.CategoryInput{
			Name:       name,
			PriceCents: price,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Updated category %s to %s\n", category.Name, booking.FormatPrice(category.PriceCents))
		return nil
	},
}

var adminCategoriesRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a seat category",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		categoryId, err := pickCategory(client)
		if err != nil {
			return err
		}
		if err := client.DeleteSeatCategory(context.Background(), token, categoryId); err != nil {
			return err
		}
		fmt.Println("Category removed")
		return nil
	},
}

var adminHallsCmd = &cobra.Command{
	Use:   "halls",
	Short: "Manage halls",
}

var adminHallsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List halls",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		halls, err := client.Halls(context.Background())
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name"})
		for _, hall := range halls {
			t.AppendRow(table.Row{hall.Id, hall.Name})
		}
		t.Render()
		return nil
	},
}

var adminHallsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a hall",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		name, err := promptText("Name", false)
		if err != nil {
			return err
		}
		rowsText, err := promptText("Rows", false)
		if err != nil {
			return err
		}
		rows, err := strconv.Atoi(rowsText)
		if err != nil {
			return fmt.Errorf("rows must be a number: %w", err)
		}

		hall, err := client.CreateHall(context.Background(), token, service.HallInput{Name: name, Rows: rows})
		if err != nil {
			return err
		}
		fmt.Printf("Created hall %s (%s)\n", hall.Name, hall.Id)
		return nil
	},
}

var adminSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage sessions",
}

var adminSessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		sessions, err := client.AllSessions(context.Background(), service.DefaultPage, service.AdminSessionPageSize)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Film", "Hall", "Starts"})
		for _, session := range sessions {
			t.AppendRow(table.Row{session.Id, session.FilmId, session.HallId, session.StartAt.Local().Format(time.RFC822)})
		}
		t.Render()
		return nil
	},
}

var adminSessionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}

		filmId, err := pickFilm(client)
		if err != nil {
			return err
		}
		hallId, err := pickHall(client)
		if err != nil {
			return err
		}
		startText, err := promptText("Start (2006-01-02 15:04)", false)
		if err != nil {
			return err
		}
		startAt, err := time.ParseInLocation("2006-01-02 15:04", startText, time.Local)
		if err != nil {
			return fmt.Errorf("start must look like 2006-01-02 15:04: %w", err)
		}

		session, err := client.CreateSession(context.Background(), token, service.SessionInput{
			FilmId:  filmId,
			HallId:  hallId,
			StartAt: startAt,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled session %s\n", session.Id)
		return nil
	},
}

var adminSessionsRmCmd = &cobra.Command{
	Use:   "rm [session-id]",
	Short: "Cancel a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()
		token, err := loadToken()
		if err != nil {
			return err
		}
		if err := client.DeleteSession(context.Background(), token, args[0]); err != nil {
			return err
		}
		fmt.Println("Session cancelled")
		return nil
	},
}

func pickFilm(client *service.Client) (string, error) {
	films, err := client.Films(context.Background(), service.DefaultPage, service.AdminFilmPageSize)
	if err != nil {
		return "", err
	}
	idByTitle := make(map[string]string, len(films))
	for _, film := range films {
		idByTitle[film.Title] = film.Id
	}
	choice, err := promptSelect("Select film", maps.Keys(idByTitle))
	if err != nil {
		return "", err
	}
	return idByTitle[choice], nil
}

func pickCategory(client *service.Client) (string, error) {
	categories, err := client.SeatCategories(context.Background(), service.DefaultPage, service.AdminCategoryPageSize)
	if err != nil {
		return "", err
	}
	idByName := make(map[string]string, len(categories))
	for _, category := range categories {
		idByName[fmt.Sprintf("%s (%s)", category.Name, booking.FormatPrice(category.PriceCents))] = category.Id
	}
	choice, err := promptSelect("Select category", maps.Keys(idByName))
	if err != nil {
		return "", err
	}
	return idByName[choice], nil
}

func pickHall(client *service.Client) (string, error) {
	halls, err := client.Halls(context.Background())
	if err != nil {
		return "", err
	}
	idByName := make(map[string]string, len(halls))
	for _, hall := range halls {
		idByName[hall.Name] = hall.Id
	}
	choice, err := promptSelect("Select hall", maps.Keys(idByName))
	if err != nil {
		return "", err
	}
	return idByName[choice], nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.Style().Options.SeparateRows = false
	return t
}

func init() {
	adminFilmsCmd.AddCommand(adminFilmsListCmd, adminFilmsAddCmd, adminFilmsEditCmd, adminFilmsRmCmd)
	adminCategoriesCmd.AddCommand(adminCategoriesListCmd, adminCategoriesAddCmd, adminCategoriesEditCmd, adminCategoriesRmCmd)
	adminHallsCmd.AddCommand(adminHallsListCmd, adminHallsAddCmd)
	adminSessionsCmd.AddCommand(adminSessionsListCmd, adminSessionsAddCmd, adminSessionsRmCmd)
	adminCmd.AddCommand(adminFilmsCmd, adminCategoriesCmd, adminHallsCmd, adminSessionsCmd)
}
