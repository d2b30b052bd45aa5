// Package cli implements the interactive SkillSwap command-line client.
//
// The entry point is App: it wires local storage, the session manager, the
// API gateway and the application services, then drives a read-eval-print
// loop. Commands prompt for their input interactively rather than taking
// positional arguments.
//
// See App, runREPL and the per-command files for details.
package cli
