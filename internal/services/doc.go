// Package services defines the shared error taxonomy for the subtitle
// pipeline. Stages tag failures with a sentinel marker so the CLI can report
// which input and which stage produced a fatal error.
package services
