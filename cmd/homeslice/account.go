package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homeslice "github.com/tavmurphy1/homeslice-go"
	"github.com/tavmurphy1/homeslice-go/internal/idp"
)

// newProvider builds the REST identity provider from config.
func newProvider() (*idp.RESTProvider, homeslice.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, homeslice.Config{}, err
	}
	p, err := idp.NewRESTProvider(cfg.IDPURL, cfg.IDPKey)
	if err != nil {
		return nil, homeslice.Config{}, err
	}
	return p, cfg, nil
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a bearer token for scripted use",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, cfg, err := newProvider()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			user, err := provider.SignIn(ctx, email, password)
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("sign in failed")
				return err
			}
			token, err := provider.IDToken(ctx)
			if err != nil {
				return err
			}

			// Record the identity with the backend, same as the TUI does
			// after sign-in. Not load-bearing, so failures only warn.
			c, err := homeslice.NewFromConfig(cfg, homeslice.StaticTokenSource(token))
			if err != nil {
				return err
			}
			if err := c.SaveProfile(ctx, homeslice.ProfileRequest{UID: user.UID, Email: user.Email}); err != nil {
				log.Warn().Err(err).Msg("profile upsert failed")
			}

			fmt.Printf("Signed in as %s\n", user.Email)
			fmt.Printf("export HOMESLICE_ID_TOKEN=%s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the HomeSlice account",
	}
	cmd.AddCommand(newAccountCreateCmd())
	return cmd
}

func newAccountCreateCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			resp, err := c.CreateAccount(ctx, homeslice.CreateAccountRequest{Email: email, Password: password})
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("create account failed")
				return err
			}

			fmt.Printf("Account created: %s (%s)\n", email, resp.AccountID())
			fmt.Println("Run `homeslice login` to get a token.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
