// Package routine loads declarative command compositions from YAML and
// builds them into schedulable commands.
//
// A routine names a root step. A step is either a bare command name or a
// mapping holding exactly one body (command, wait, waitUntil, sequence,
// parallel, race, deadline, repeat, proxy or either) plus optional
// modifiers:
//
//	name: autonomous
//	routine:
//	  sequence:
//	    - driveForward
//	    - wait: 500ms
//	    - parallel: [raiseArm, stop]
//	    - command: driveForward
//	      timeout: 2s
//	      unless: armUp
//
// Command and condition names are resolved against a Registry when the
// routine is built.
package routine
