package cmd

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kinobilet-cli/config"
	"kinobilet-cli/logging"
	"kinobilet-cli/service"
	"kinobilet-cli/store"
	"kinobilet-cli/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Kinobilet CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Kinobilet CLI v0.1")
	},
}

var rootCmd = &cobra.Command{
	Use:   "kinobilet",
	Short: "Cinema tickets from the terminal",
	Long:  `Browse films, pick seats on the hall map and pay, all without leaving the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := logging.SetupFile(cfg.LogLevel); err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}

		auth, err := store.LoadAuth()
		if err != nil {
			return err
		}

		client := newClient(cfg)
		program := tea.NewProgram(tui.New(client, auth.Token), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func newClient(cfg config.Config) *service.Client {
	return service.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.BaseURL)
}

// cliSetup is the shared preamble of the non-interactive subcommands:
// config, stderr logging and an API client.
func cliSetup() (config.Config, *service.Client) {
	cfg := config.Load()
	logging.SetupStderr(cfg.LogLevel)
	return cfg, newClient(cfg)
}

func Execute() {
	rootCmd.AddCommand(versionCmd, loginCmd, logoutCmd, whoamiCmd, registerCmd, adminCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
