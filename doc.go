// Package arbiter provides a cooperative, tick-driven command scheduler for
// robot control loops.
//
// Commands claim subsystems, the scheduler arbitrates conflicting claims and
// executes every active command once per tick. Compositions (sequence,
// parallel, race, deadline, repeat, proxy) are built with the command
// package and may be declared in YAML routines.
//
// Hosts typically interact with the engine through the Service façade:
//
//	srv, _ := arbiter.NewFromConfig(cfg, arbiter.WithRegistry(registry))
//	rt := srv.Runtime()
//	cmd, _ := rt.ScheduleRoutine(ctx, "autonomous")
//	_ = rt.Loop(ctx, 0)
//
// See the command, scheduler, trigger and routine packages for details.
package arbiter
