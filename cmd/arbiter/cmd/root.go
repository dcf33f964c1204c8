package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/arbiter"
)

var (
	cfgFile string
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arbiter",
	Short: "arbiter - tick-driven command scheduler",
	Long: `arbiter runs declarative command routines against a simulated robot
with a drive base and an arm.

Commands:
  driveForward, driveBack, stop, raiseArm, lowerArm
Conditions:
  armUp, armDown, atGoal`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "routines", "", "routine base URL (overrides routines.baseURL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print lifecycle events")
}

func loadConfig(ctx context.Context) (*arbiter.Config, error) {
	config, err := arbiter.LoadConfig(ctx, cfgFile)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		config.Routines.BaseURL = baseURL
	}
	return config, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
