// Package cli defines the Cobra command tree for the reslink CLI. The root
// command performs the link; status and version are read-only. Commands only
// parse input and format output; the work happens in internal/linker.
package cli
