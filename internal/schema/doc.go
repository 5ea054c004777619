// Package schema validates the optional per-project settings file
// (.reslink.yaml) against an embedded JSON Schema. The file is YAML on disk
// and is normalized to JSON values before validation so that issues can be
// reported by JSON pointer path.
package schema
