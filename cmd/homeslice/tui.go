package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homeslice "github.com/tavmurphy1/homeslice-go"
	"github.com/tavmurphy1/homeslice-go/internal/idp"
	"github.com/tavmurphy1/homeslice-go/internal/pantry"
	"github.com/tavmurphy1/homeslice-go/internal/recipebook"
	"github.com/tavmurphy1/homeslice-go/internal/tui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen HomeSlice terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal; keep log output
			// from tearing it up unless debugging.
			if !debug {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}

			provider, err := idp.NewRESTProvider(cfg.IDPURL, cfg.IDPKey)
			if err != nil {
				return err
			}
			auth := homeslice.NewAuthStore(provider)
			if err := auth.Start(); err != nil {
				return err
			}
			defer auth.Close()

			client, err := homeslice.NewFromConfig(cfg, auth)
			if err != nil {
				return err
			}

			app := tui.NewApp(tui.Deps{
				Client:   client,
				Auth:     auth,
				Provider: provider,
				Pantry:   pantry.New(client),
				Recipes:  recipebook.New(client),
			})
			if err := app.Run(); err != nil {
				log.Error().Err(err).Msg("tui exited with error")
				return err
			}
			return nil
		},
	}
}
