// Package server implements the MCP (Model Context Protocol) server that
// exposes cinescope's exposure and color scopes to MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Every tool that reads an image accepts either a file path ("path") or
// inline base64 data ("image", raw or as a data URL):
//   - scope_load: Image metadata (dimensions, aspect ratio, format)
//   - scope_analyze: RGB histogram, vectorscope trace and the normalized image
//   - scope_false_color: False-color exposure overlay for a camera profile
//   - scope_pixel_color: Color, chrominance, hex and HSL of one pixel
//   - scope_focus_peaking: Highlight in-focus edges
//   - scope_profiles: Registered false-color profiles
//
// # Image Caching
//
// Images loaded by path are decoded once and cached for the lifetime of the
// process. An entry is decoded again when the file's size or modification
// time changes. Entries are never evicted, so memory grows with the number of
// distinct paths a session touches. Inline images are decoded per call. Both
// are subject to the configured byte limit (35 MiB by default).
//
// A request line longer than the limit allows (base64 overhead included) is
// discarded and answered with a -32000 error carrying a null id; the session
// continues with the next line.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv, err := server.New(server.Options{Config: cfg, Logger: logger})
//	if err != nil {
//	    return err
//	}
//	return srv.Run()
package server
