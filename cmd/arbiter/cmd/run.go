package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/viant/arbiter"
	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/event"
	"github.com/viant/arbiter/internal/sim"
)

var (
	runTicks    int
	runDisabled bool
)

var runCmd = &cobra.Command{
	Use:   "run <routine>",
	Short: "Runs a routine on the simulated robot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := runRoutine(ctx, args[0]); err != nil {
			printError("run failed", err)
			return err
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 500, "maximum number of ticks, 0 for no limit")
	runCmd.Flags().BoolVar(&runDisabled, "disabled", false, "start with the scheduler disabled")
	rootCmd.AddCommand(runCmd)
}

func runRoutine(ctx context.Context, location string) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	robot := sim.New()
	options := []arbiter.Option{arbiter.WithRegistry(robot.Registry())}
	if verbose {
		options = append(options, arbiter.WithListeners(event.Filter(func(e *event.Event) {
			fmt.Printf("tick %d: %s %s\n", e.Context.Tick, e.Type, e.Context.Command)
		}, event.Initialize, event.Interrupt, event.Finish)))
	}
	srv, err := arbiter.NewFromConfig(config, options...)
	if err != nil {
		return err
	}
	defer srv.Close()

	sched := srv.Scheduler()
	sched.RegisterSubsystem(robot.Subsystems()...)
	if err = sched.SetDefaultCommand(robot.Drive, robot.Idle()); err != nil {
		return err
	}
	if runDisabled {
		sched.Disable()
	}

	runtime := srv.Runtime()
	routineCmd, err := runtime.ScheduleRoutine(ctx, location)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := func(cmd command.Command) {
		if cmd == routineCmd {
			cancel()
		}
	}
	sched.OnFinish(done)
	sched.OnInterrupt(done)

	err = runtime.Loop(ctx, runTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	progress := srv.Progress()
	fmt.Printf("routine %s: scheduled=%v ticks=%d initialized=%d finished=%d interrupted=%d\n",
		routineCmd.Name(), sched.IsScheduled(routineCmd), sched.Tick(),
		progress.Initialized, progress.Finished, progress.Interrupted)
	fmt.Printf("robot: position=%.2f arm=%.0f\n", robot.Drive.Position, robot.Arm.Angle)
	return nil
}
