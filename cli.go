package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/cafelike/app"
	"github.com/CrestNiraj12/cafelike/domain"
	"github.com/CrestNiraj12/cafelike/infra/auth"
	"github.com/CrestNiraj12/cafelike/infra/cafeapi"
	"github.com/CrestNiraj12/cafelike/infra/config"
	"github.com/CrestNiraj12/cafelike/infra/logging"
)

type rootOptions struct {
	verbose bool
	apiURL  string
}

// services is everything a command needs, built once per invocation.
type services struct {
	cfg     config.Config
	log     *zap.Logger
	likes   *cafeapi.LikeService
	toggler *app.ToggleController
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cafelike",
		Short: "Like and unlike Flask Cafe cafes from the terminal",
		Long: `cafelike talks to the Flask Cafe likes API.

Run without a subcommand to open the interactive like controls for the
given cafe ids (plus the ones remembered from last time).`,
		Version:       "dev",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          rootArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts, args)
		},
	}
	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "API base URL (overrides CAFELIKE_API_URL)")

	root.AddCommand(
		newStatusCmd(opts),
		newSetCmd(opts, true),
		newSetCmd(opts, false),
		newToggleCmd(opts),
		newUICmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprint(cmd.OutOrStdout(), versionString())
			},
		},
	)
	return root
}

// rootArgs accepts cafe ids on the root command. A word that is not an id
// but resembles a subcommand is reported the way cobra reports unknown
// commands; anything else is left for parseCafeIDs to reject.
func rootArgs(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if _, err := domain.ParseCafeID(a); err == nil {
			continue
		}
		if cmd.SuggestionsMinimumDistance <= 0 {
			cmd.SuggestionsMinimumDistance = 2
		}
		suggestions := cmd.SuggestionsFor(a)
		if len(suggestions) == 0 {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "unknown command %q for %q\n\nDid you mean this?\n", a, cmd.CommandPath())
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\t%s\n", s)
		}
		return errors.New(b.String())
	}
	return nil
}

// newServices loads configuration and wires the API client. forUI routes
// logs away from the terminal.
func newServices(opts *rootOptions, forUI bool) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.apiURL != "" {
		cfg.APIURL, err = config.NormalizeAPIURL(opts.apiURL)
		if err != nil {
			return nil, fmt.Errorf("--api-url: %w", err)
		}
	}

	debug := cfg.Debug || opts.verbose
	var log *zap.Logger
	if forUI {
		log, err = logging.ForUI(cfg.LogPath, debug)
	} else {
		log, err = logging.New(cfg.LogPath, debug)
	}
	if err != nil {
		return nil, err
	}

	client := cafeapi.NewClient(cfg.APIURL, auth.NewFileSessionProvider(cfg.SessionPath, cfg.SessionCookie), cfg.Timeout, log)
	likes := cafeapi.NewLikeService(client)
	return &services{
		cfg:     cfg,
		log:     log,
		likes:   likes,
		toggler: app.NewToggleController(likes, log, 2*cfg.Timeout),
	}, nil
}

func parseCafeIDs(args []string) ([]domain.CafeID, error) {
	ids := make([]domain.CafeID, 0, len(args))
	for _, a := range args {
		id, err := domain.ParseCafeID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
