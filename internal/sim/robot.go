// Package sim is a simulated two-subsystem robot used by the CLI and
// examples: a drive base moving along one axis and an arm that swings
// between its stops.
package sim

import (
	"context"
	"math"

	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/routine"
)

const (
	// DriveSpeed is the distance covered per tick at full power.
	DriveSpeed = 0.1
	// ArmSpeed is the arm angle change per tick, in degrees.
	ArmSpeed = 15.0
	ArmUp    = 90.0
	ArmDown  = 0.0
)

// Drive is a single-axis drive base.
type Drive struct {
	*command.SubsystemBase
	Position float64
	Power    float64
}

// Periodic integrates the commanded power.
func (d *Drive) Periodic(context.Context) {
	d.Position += d.Power * DriveSpeed
}

// Arm swings between ArmDown and ArmUp.
type Arm struct {
	*command.SubsystemBase
	Angle  float64
	Target float64
}

// Periodic moves the arm towards its target.
func (a *Arm) Periodic(context.Context) {
	delta := a.Target - a.Angle
	if math.Abs(delta) <= ArmSpeed {
		a.Angle = a.Target
		return
	}
	a.Angle += math.Copysign(ArmSpeed, delta)
}

// Robot owns the simulated subsystems.
type Robot struct {
	Drive *Drive
	Arm   *Arm
	// Goal is the drive position driveForward stops at.
	Goal float64
}

// New returns a robot at rest with the arm down.
func New() *Robot {
	return &Robot{
		Drive: &Drive{SubsystemBase: command.NewSubsystem("drive", nil)},
		Arm:   &Arm{SubsystemBase: command.NewSubsystem("arm", nil)},
		Goal:  1,
	}
}

// Subsystems returns the drive and the arm.
func (r *Robot) Subsystems() []command.Subsystem {
	return []command.Subsystem{r.Drive, r.Arm}
}

// Idle returns a command holding the drive still; used as its default.
func (r *Robot) Idle() command.Command {
	ret := command.NewRun(func(context.Context) { r.Drive.Power = 0 }, r.Drive)
	ret.SetName("idle")
	return ret
}

// Registry returns the named commands and conditions of the robot.
func (r *Robot) Registry() *routine.Registry {
	ret := routine.NewRegistry()
	ret.Register("driveForward", func() *command.Ptr {
		cmd := command.NewFunctional(
			func(context.Context) { r.Drive.Power = 1 },
			nil,
			func(context.Context, bool) { r.Drive.Power = 0 },
			r.AtGoal,
			r.Drive)
		cmd.SetName("driveForward")
		return command.Own(cmd)
	})
	ret.Register("driveBack", func() *command.Ptr {
		cmd := command.NewFunctional(
			func(context.Context) { r.Drive.Power = -1 },
			nil,
			func(context.Context, bool) { r.Drive.Power = 0 },
			func() bool { return r.Drive.Position <= 0 },
			r.Drive)
		cmd.SetName("driveBack")
		return command.Own(cmd)
	})
	ret.Register("stop", func() *command.Ptr {
		cmd := command.NewInstant(func(context.Context) { r.Drive.Power = 0 }, r.Drive)
		cmd.SetName("stop")
		return command.Own(cmd)
	})
	ret.Register("raiseArm", func() *command.Ptr { return r.moveArm("raiseArm", ArmUp) })
	ret.Register("lowerArm", func() *command.Ptr { return r.moveArm("lowerArm", ArmDown) })
	ret.RegisterCondition("armUp", r.ArmIsUp)
	ret.RegisterCondition("armDown", func() bool { return r.Arm.Angle == ArmDown })
	ret.RegisterCondition("atGoal", r.AtGoal)
	return ret
}

// AtGoal reports whether the drive reached Goal.
func (r *Robot) AtGoal() bool { return r.Drive.Position >= r.Goal }

// ArmIsUp reports whether the arm rests at its upper stop.
func (r *Robot) ArmIsUp() bool { return r.Arm.Angle == ArmUp }

func (r *Robot) moveArm(name string, target float64) *command.Ptr {
	cmd := command.NewFunctional(
		func(context.Context) { r.Arm.Target = target },
		nil,
		nil,
		func() bool { return r.Arm.Angle == target },
		r.Arm)
	cmd.SetName(name)
	return command.Own(cmd)
}
