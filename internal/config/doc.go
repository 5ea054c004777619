// Package config turns the command line into a validated Invocation and
// layers the remaining settings from defaults, the optional project file in
// the root directory, RESLINK_* environment variables, and flags.
package config
