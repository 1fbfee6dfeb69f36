package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"kinobilet-cli/service"
	"kinobilet-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		email, err := promptText("Email", false)
		if err != nil {
			return err
		}
		password, err := promptText("Password", true)
		if err != nil {
			return err
		}

		token, err := client.Login(context.Background(), service.Credentials{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}
		if err := store.SaveAuth(store.StoredAuth{Token: token, Email: email}); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		email, err := promptText("Email", false)
		if err != nil {
			return err
		}
		password, err := promptText("Password", true)
		if err != nil {
			return err
		}
		firstName, err := promptText("First name", false)
		if err != nil {
			return err
		}
		lastName, err := promptText("Last name", false)
		if err != nil {
			return err
		}
		ageText, err := promptText("Age", false)
		if err != nil {
			return err
		}
		age, err := strconv.Atoi(ageText)
		if err != nil {
			return fmt.Errorf("age must be a number: %w", err)
		}
		gender, err := promptSelect("Gender", []string{"MALE", "FEMALE"})
		if err != nil {
			return err
		}

		token, err := client.Register(context.Background(), service.Registration{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
			Age:       age,
			Gender:    gender,
		})
		if err != nil {
			return err
		}
		if err := store.SaveAuth(store.StoredAuth{Token: token, Email: email}); err != nil {
			return err
		}
		fmt.Printf("Registered and logged in as %s\n", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.ClearAuth(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the profile behind the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := cliSetup()

		auth, err := store.LoadAuth()
		if err != nil {
			return err
		}
		if auth.Token == "" {
			return fmt.Errorf("not logged in, run `kinobilet login` first")
		}

		user, err := client.CurrentUser(context.Background(), auth.Token)
		if err != nil {
			if service.IsUnauthorized(err) {
				return fmt.Errorf("stored token is no longer valid, run `kinobilet login` again")
			}
			return err
		}
		fmt.Printf("%s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.RoleType)
		return nil
	},
}

func promptText(label string, masked bool) (string, error) {
	prompt := promptui.Prompt{Label: label}
	if masked {
		prompt.Mask = '•'
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}
	_, value, err := prompt.Run()
	return value, err
}

// loadToken fetches the stored token for commands that require auth.
func loadToken() (string, error) {
	auth, err := store.LoadAuth()
	if err != nil {
		return "", err
	}
	if auth.Token == "" {
		return "", fmt.Errorf("not logged in, run `kinobilet login` first")
	}
	return auth.Token, nil
}
