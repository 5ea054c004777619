// Package linker makes a project's resource directory visible inside a build
// directory. EnsureResourceLink creates <build>/<res> as a relative symlink to
// <root>/<res> unless something already occupies that path, and Inspect
// reports the state of that entry without changing it. Nothing in this
// package ever removes or rewrites an existing entry.
package linker
