// Package app wires the spyglass components together.
//
// Run is the composition root: it loads configuration and preferences, opens
// the diagnostic sink, builds the shared log buffer, starts the stream
// client's reconnect loop on the application context, and hands everything
// to the UI. Cancelling the context (signal or quit key) tears the stream
// down with the UI; nothing outlives Run.
package app
