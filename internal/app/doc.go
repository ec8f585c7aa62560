// Package app provides application initialization and lifecycle management.
// It wires configuration, logging, telemetry, the materials data source and
// the measurement pipeline into a single HTTP server with graceful shutdown.
package app
