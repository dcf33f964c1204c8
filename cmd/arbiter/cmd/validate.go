package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/arbiter/internal/sim"
	"github.com/viant/arbiter/routine"
)

var validateCmd = &cobra.Command{
	Use:   "validate <routine>...",
	Short: "Checks routines against the simulated robot's commands",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd.Context())
		if err != nil {
			printError("config", err)
			return err
		}
		service := routine.New(routine.WithBaseURL(config.Routines.BaseURL), routine.WithRegistry(sim.New().Registry()))
		failed := 0
		for _, location := range args {
			aRoutine, err := service.Load(cmd.Context(), location)
			if err != nil {
				failed++
				printError(location, err)
				continue
			}
			issues := service.Registry().Check(aRoutine)
			for _, issue := range issues {
				printError(location, issue)
			}
			if len(issues) > 0 {
				failed++
				continue
			}
			fmt.Printf("%s: ok\n", aRoutine.Name)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d routines invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
