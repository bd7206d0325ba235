package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/PitchBot_Go/internal/config"
	"github.com/osse101/PitchBot_Go/internal/identity"
)

var identitiesCmd = &cobra.Command{
	Use:   "identities",
	Short: "Load the identities file and list the decoded accounts",
	Args:  cobra.NoArgs,
	RunE:  runIdentities,
}

func runIdentities(cmd *cobra.Command, _ []string) error {
	path := identitiesFile
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path = cfg.IdentitiesFile
	}

	ids, err := identity.LoadFile(path)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTELEGRAM ID\tUSERNAME\tPROXY")
	for _, id := range ids {
		proxy := "-"
		if id.Proxy != "" {
			proxy = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", id.Name, id.TelegramID, id.Username, proxy)
	}
	return w.Flush()
}
