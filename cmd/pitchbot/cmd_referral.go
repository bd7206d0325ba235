package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/PitchBot_Go/internal/bootstrap"
	"github.com/osse101/PitchBot_Go/internal/referral"
	"github.com/osse101/PitchBot_Go/internal/utils"
)

var referralCmd = &cobra.Command{
	Use:   "referral",
	Short: "Run a single referral claim pass for every identity and exit",
	Args:  cobra.NoArgs,
	RunE:  runReferral,
}

func runReferral(cmd *cobra.Command, _ []string) error {
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

	clients := bootstrap.NewClientFactory(cfg)
	accounts := make([]referral.Account, 0, len(identities))
	for _, id := range identities {
		client, err := clients(id)
		if err != nil {
			return err
		}
		accounts = append(accounts, referral.Account{Identity: id, Client: client})
	}

	results, err := referral.NewJob(accounts, notifier, cfg.ReferralWorkers).Run(cmd.Context())

	out := cmd.OutOrStdout()
	for _, r := range results {
		status := "nothing to claim"
		switch {
		case r.Err != nil:
			status = "failed: " + r.Err.Error()
		case r.Claimed:
			status = "claimed, balance " + utils.FormatCoins(r.Balance)
		}
		fmt.Fprintf(out, "%-20s referrals=%d %s\n", r.Identity, r.Count, status)
	}
	return err
}
