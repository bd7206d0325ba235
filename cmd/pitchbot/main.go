// Command pitchbot farms PitchTalk rewards for a list of Telegram accounts
// and periodically claims their referral rewards.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/PitchBot_Go/internal/bootstrap"
	"github.com/osse101/PitchBot_Go/internal/config"
)

var identitiesFile string

var rootCmd = &cobra.Command{
	Use:           "pitchbot",
	Short:         "PitchTalk farming and referral claim bot",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runService,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&identitiesFile, "identities", "i", "",
		"identities file (.yaml, .ini or .txt), overrides IDENTITIES_FILE")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(referralCmd)
	rootCmd.AddCommand(identitiesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and initializes logging.
// The returned closer flushes the log file.
func setup() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if identitiesFile != "" {
		cfg.IdentitiesFile = identitiesFile
	}
	return cfg, bootstrap.SetupLogger(cfg), nil
}
