// Package logging builds the slog loggers used by the cinescope server and CLI.
//
// Logs always go to stderr: stdout belongs to the MCP protocol stream and to
// JSON command output. The analysis engine itself never logs.
package logging
