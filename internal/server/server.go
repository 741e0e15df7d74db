package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/cinescope/internal/config"
	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/logging"
	"github.com/ironsheep/cinescope/internal/scope"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "cinescope"

	// base64 inflates payloads by 4/3; leave headroom for the JSON envelope.
	requestOverhead = 1024 * 1024
)

// Server handles MCP protocol communication. Its image cache keeps every
// decoded path until the process exits.
type Server struct {
	cfg      *config.Config
	cache    *imaging.ImageCache
	profiles *scope.ProfileSet
	logger   *slog.Logger
	version  string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Options configures a Server.
type Options struct {
	// Config supplies analysis limits and custom profiles. Nil uses defaults.
	Config *config.Config

	// Logger receives protocol and tool diagnostics. Nil discards them.
	Logger *slog.Logger

	// Version is reported in the initialize handshake.
	Version string
}

// New creates a new MCP server instance
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	profiles, err := cfg.ProfileSet()
	if err != nil {
		return nil, fmt.Errorf("build profiles: %w", err)
	}

	return &Server{
		cfg:      cfg,
		cache:    imaging.NewImageCache(cfg.Analysis.MaxImageBytes),
		profiles: profiles,
		logger:   logger,
		version:  version,
	}, nil
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited requests from r and writes responses to w
// until r is exhausted. A request longer than the size limit is discarded
// and answered with an error; the session continues.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, 64*1024)
	limit := s.maxRequestBytes()

	encoder := json.NewEncoder(w)

	s.logger.Info("mcp server started", "version", s.version, "profiles", len(s.profiles.Names()))

	for {
		line, tooLong, err := readRequest(reader, limit)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}

		var resp *MCPResponse
		method := ""
		switch {
		case tooLong:
			s.logger.Warn("request too large", "limit", limit)
			resp = oversizedResponse(s.cfg.Analysis.MaxImageBytes)
		case len(line) == 0:
			continue
		default:
			var req MCPRequest
			if err := json.Unmarshal(line, &req); err != nil {
				s.logger.Warn("failed to parse request", "error", err)
				continue
			}
			method = req.Method
			resp = s.handleRequest(&req)
		}

		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("failed to encode response", "method", method, "error", err)
			}
		}
	}

	s.logger.Info("mcp server stopped")
	return nil
}

// readRequest returns the next line without its terminator. Once a line
// grows past limit the remainder is drained and tooLong is reported instead.
func readRequest(r *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(chunk) > limit {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// oversizedResponse answers a request that was dropped unread, so its id is
// unknown and reported as null.
func oversizedResponse(maxImageBytes int64) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		Error: &MCPError{
			Code:    -32000,
			Message: "request exceeds max_image_bytes",
			Data:    fmt.Sprintf("max_image_bytes is %d", maxImageBytes),
		},
	}
}

func (s *Server) maxRequestBytes() int {
	return int(s.cfg.Analysis.MaxImageBytes/3*4) + requestOverhead
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		s.logger.Debug("unknown method", "method", req.Method)
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    serverName,
				"version": s.version,
			},
		},
	}
}
