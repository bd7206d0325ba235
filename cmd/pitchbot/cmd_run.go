package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/PitchBot_Go/internal/bootstrap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run farming workers and the scheduled referral job until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runService,
}

func runService(cmd *cobra.Command, _ []string) error {
	cfg, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	identities, err := bootstrap.LoadIdentities(cfg)
	if err != nil {
		return err
	}

	notifier, err := bootstrap.NewNotifier(cfg)
	if err != nil {
		return err
	}

	app, err := bootstrap.NewApp(cfg, identities, bootstrap.NewClientFactory(cfg), notifier)
	if err != nil {
		return err
	}

	return app.Run(cmd.Context())
}
