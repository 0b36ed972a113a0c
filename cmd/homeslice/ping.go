package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	var wait bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the HomeSlice backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			probe := func() error {
				req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, cfg.APIURL+"/recipes", nil)
				if err != nil {
					return backoff.Permanent(err)
				}
				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					return err
				}
				defer func() { _ = resp.Body.Close() }()
				// Any HTTP response counts as reachable; an unauthenticated
				// probe is expected to get a 401.
				return nil
			}

			if !wait {
				if err := probe(); err != nil {
					log.Error().Err(err).Str("api_url", cfg.APIURL).Msg("backend unreachable")
					return err
				}
				fmt.Println("Backend is reachable.")
				return nil
			}

			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = 500 * time.Millisecond
			exp.MaxInterval = 5 * time.Second
			exp.MaxElapsedTime = timeout

			start := time.Now()
			notify := func(err error, next time.Duration) {
				log.Debug().Err(err).Dur("retry_in", next).Msg("backend not ready")
			}
			if err := backoff.RetryNotify(probe, backoff.WithContext(exp, cmd.Context()), notify); err != nil {
				log.Error().Err(err).Dur("waited", time.Since(start)).Msg("backend never became reachable")
				return err
			}
			fmt.Printf("Backend is reachable after %s.\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Keep retrying with backoff until the backend responds")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Give up after this long with --wait")

	return cmd
}
