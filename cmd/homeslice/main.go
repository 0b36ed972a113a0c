// Command homeslice is the HomeSlice terminal client: scripted
// subcommands over the client SDK plus a full-screen TUI. Configuration
// comes from HOMESLICE_* environment variables, optionally seeded from a
// .env file in the working directory.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

var apiURL string
var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "homeslice",
		Short: "HomeSlice pantry and recipe client",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; real env always wins.
			_ = godotenv.Load()

			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
				log.Logger = log.Output(zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: "2006-01-02 15:04:05",
				})
			}

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("HOMESLICE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "HomeSlice backend base URL (overrides HOMESLICE_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newPantryCmd())
	rootCmd.AddCommand(newRecipesCmd())
	rootCmd.AddCommand(newPingCmd())
	rootCmd.AddCommand(newTuiCmd())

	return rootCmd
}

// loadConfig builds the SDK config from the environment plus flag
// overrides.
func loadConfig() (homeslice.Config, error) {
	if apiURL != "" {
		_ = os.Setenv("HOMESLICE_API_URL", apiURL)
	}
	return homeslice.ConfigFromEnv()
}

// newClient builds a client for scripted subcommands. The bearer token
// comes from HOMESLICE_ID_TOKEN; `homeslice login` prints one.
func newClient() (*homeslice.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return homeslice.NewFromConfig(cfg, homeslice.StaticTokenSource(cfg.IDToken))
}
