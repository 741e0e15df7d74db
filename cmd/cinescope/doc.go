// Package main hosts the cinescope entrypoint and command graph.
//
// Invoked without a subcommand the binary runs the MCP server on
// stdin/stdout, which is how MCP clients launch it. The remaining commands
// expose the same scopes for terminal use: analyze and probe print JSON,
// false-color writes an image, and profiles renders a table. Configuration
// is resolved once per invocation and shared by every command.
package main
