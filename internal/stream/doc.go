// Package stream implements the push-stream client that feeds the log
// pipeline.
//
// # Overview
//
// The client holds one long-lived GET to the server's
// /api/logs/stream endpoint (history replay requested, credential attached
// as a URL-encoded query parameter when configured) and reads server-sent
// events off the response body. Each event payload is one JSON log record:
// well-formed payloads go to the sink, malformed ones are dropped with a
// diagnostic and the stream stays open.
//
// # Reconnection
//
// Any dial failure, non-200 response, read error, or clean close ends the
// current connection; the client then waits a fixed delay (3 s by default)
// and dials again. There is no backoff growth and no retry cap: this is a
// best-effort live tail, and the viewer should eventually reconnect forever
// rather than give up. A persistent outage is visible only as a stalled
// feed.
//
// The connect loop is sequential, so at most one connection is ever live —
// the previous response body is closed before the next dial. The loop runs
// in a single goroutine bound to the context passed to Start; cancelling
// that context is the only way to stop it.
//
// # Connection State
//
// State() reports disconnected, connecting, or live for the status bar.
// Each attempt is tagged with a fresh connection id in diagnostics so
// reconnect cycles can be told apart in the diag file.
package stream
