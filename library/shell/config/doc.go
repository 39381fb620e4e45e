// Package config provides the runtime configuration of the library ledger:
// which input file to load, how the library is named, and how logs are written.
//
// Values come from Default, are overridden by the environment (see FromEnv),
// and finally by command-line flags bound in cmd/libraryctl.
//
// This package is part of the shell (infrastructure) layer.
package config
