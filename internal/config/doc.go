// Package config loads the spyglass configuration file.
//
// # Overview
//
// Configuration lives at ~/.config/spyglass/config.toml by default and is
// entirely optional: a missing file, or any empty field, falls back to
// built-in defaults so the viewer starts with zero setup against a local
// server.
//
// # Fields
//
//	server_url  base URL or host:port of the log stream server
//	password    optional stream credential, forwarded opaquely
//	log_limit   visible log set cap (prefs may override it)
//	diag_file   where diagnostics are appended; unset disables them
//	export_dir  where snapshot exports are written
//
// Paths support ~ expansion. The password is deliberately not trimmed or
// validated: it is an opaque value owned by the server.
package config
