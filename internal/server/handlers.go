package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/scope"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "scope_analyze").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool call failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool call", "tool", params.Name, "duration", time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "scope_load":
		return s.handleScopeLoad(args)
	case "scope_analyze":
		return s.handleScopeAnalyze(args)
	case "scope_false_color":
		return s.handleScopeFalseColor(args)
	case "scope_pixel_color":
		return s.handleScopePixelColor(args)
	case "scope_focus_peaking":
		return s.handleScopeFocusPeaking(args)
	case "scope_profiles":
		return s.handleScopeProfiles()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// imageSource names the image a tool operates on. Path wins when both are set.
type imageSource struct {
	Path  string `json:"path"`
	Image string `json:"image"`
}

var errNoImage = errors.New("no image provided: set path or image")

func (s *Server) loadImage(src imageSource) (image.Image, error) {
	switch {
	case src.Path != "":
		return s.cache.Load(src.Path)
	case src.Image != "":
		return imaging.DecodeBase64(src.Image, s.cfg.Analysis.MaxImageBytes)
	default:
		return nil, errNoImage
	}
}

func (s *Server) encodeFrame(f *scope.Frame) (string, error) {
	return imaging.EncodePNGBase64(imaging.Preview(f.Image(), s.cfg.Analysis.PreviewMaxDimension))
}

// === Load ===

func (s *Server) handleScopeLoad(args json.RawMessage) (interface{}, error) {
	var a imageSource
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path != "" {
		return imaging.LoadImageInfo(s.cache, a.Path)
	}
	img, err := s.loadImage(a)
	if err != nil {
		return nil, err
	}
	return imaging.InfoFor(img), nil
}

// === Analyze ===

type scopeAnalyzeArgs struct {
	imageSource
	Region       *imaging.Region `json:"region,omitempty"`
	RegionName   string          `json:"region_name"`
	IncludeImage *bool           `json:"include_image"`
}

// AnalyzeResult is the payload of scope_analyze.
type AnalyzeResult struct {
	scope.Report

	// AspectRatio describes the analyzed area, formatted by
	// imaging.FormatAspectRatio.
	AspectRatio string `json:"aspect_ratio"`

	// Region is the analyzed rectangle when only part of the image was read.
	Region *imaging.Region `json:"region,omitempty"`

	// ImageData is the normalized image as base64 PNG.
	ImageData string `json:"image_data,omitempty"`
	MimeType  string `json:"mime_type,omitempty"`
}

func (s *Server) handleScopeAnalyze(args json.RawMessage) (interface{}, error) {
	var a scopeAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}

	region := a.Region
	if region == nil && a.RegionName != "" {
		b := img.Bounds()
		r, err := imaging.NamedRegion(b.Dx(), b.Dy(), a.RegionName)
		if err != nil {
			return nil, err
		}
		region = &r
	}
	if region != nil {
		img, err = imaging.CropRegion(img, *region)
		if err != nil {
			return nil, err
		}
	}

	frame, err := imaging.LoadFrame(img)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		Report:      *scope.Analyze(frame),
		AspectRatio: imaging.FormatAspectRatio(frame.Width, frame.Height),
		Region:      region,
	}
	if a.IncludeImage == nil || *a.IncludeImage {
		data, err := s.encodeFrame(frame)
		if err != nil {
			return nil, err
		}
		result.ImageData = data
		result.MimeType = imaging.PNGMimeType
	}
	return result, nil
}

// === False color ===

type scopeFalseColorArgs struct {
	imageSource
	Type string `json:"type"`
}

// FalseColorResult is the payload of scope_false_color.
type FalseColorResult struct {
	Profile string `json:"profile"`

	// PassThrough is true when the profile has no bands, or is unknown, and
	// the image was returned unchanged.
	PassThrough bool   `json:"pass_through"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageData   string `json:"image_data"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleScopeFalseColor(args json.RawMessage) (interface{}, error) {
	var a scopeFalseColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Type == "" {
		a.Type = s.cfg.Analysis.DefaultProfile
	}
	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}
	frame, err := imaging.LoadFrame(img)
	if err != nil {
		return nil, err
	}

	profile, ok := s.profiles.Lookup(a.Type)
	passThrough := !ok || profile.PassThrough()
	if !ok {
		s.logger.Debug("unknown false color profile, passing through", "profile", a.Type)
	}

	out := s.profiles.FalseColor(frame, a.Type)
	data, err := s.encodeFrame(out)
	if err != nil {
		return nil, err
	}

	return &FalseColorResult{
		Profile:     a.Type,
		PassThrough: passThrough,
		Width:       out.Width,
		Height:      out.Height,
		ImageData:   data,
		MimeType:    imaging.PNGMimeType,
	}, nil
}

// === Pixel color ===

type scopePixelColorArgs struct {
	imageSource
	X *int `json:"x"`
	Y *int `json:"y"`
}

// PixelColorResult is the payload of scope_pixel_color.
type PixelColorResult struct {
	scope.PixelSample
	Hex string           `json:"hex"`
	HSL imaging.HSLColor `json:"hsl"`
}

func (s *Server) handleScopePixelColor(args json.RawMessage) (interface{}, error) {
	var a scopePixelColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.X == nil || a.Y == nil {
		return nil, errors.New("x and y are required")
	}
	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}
	frame, err := imaging.LoadFrame(img)
	if err != nil {
		return nil, err
	}

	sample, err := scope.Probe(frame, *a.X, *a.Y)
	if err != nil {
		return nil, err
	}
	desc := imaging.DescribeColor(sample.Color)
	return &PixelColorResult{PixelSample: sample, Hex: desc.Hex, HSL: desc.HSL}, nil
}

// === Focus peaking ===

type scopeFocusPeakingArgs struct {
	imageSource
	Threshold *float64 `json:"threshold"`
	Color     string   `json:"color"`
}

// FocusPeakingResult is the payload of scope_focus_peaking.
type FocusPeakingResult struct {
	Threshold float64 `json:"threshold"`
	Color     string  `json:"color"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	ImageData string  `json:"image_data"`
	MimeType  string  `json:"mime_type"`
}

func (s *Server) handleScopeFocusPeaking(args json.RawMessage) (interface{}, error) {
	var a scopeFocusPeakingArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := scope.DefaultPeakingThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	highlight := scope.PeakingColor
	if a.Color != "" {
		c, err := imaging.ParseHexColor(a.Color)
		if err != nil {
			return nil, err
		}
		highlight = c
	}

	img, err := s.loadImage(a.imageSource)
	if err != nil {
		return nil, err
	}
	frame, err := imaging.LoadFrame(img)
	if err != nil {
		return nil, err
	}
	out, err := scope.FocusPeaking(frame, threshold, highlight)
	if err != nil {
		return nil, err
	}
	data, err := s.encodeFrame(out)
	if err != nil {
		return nil, err
	}

	return &FocusPeakingResult{
		Threshold: threshold,
		Color:     imaging.DescribeColor(highlight).Hex,
		Width:     out.Width,
		Height:    out.Height,
		ImageData: data,
		MimeType:  imaging.PNGMimeType,
	}, nil
}

// === Profiles ===

// ProfilesResult is the payload of scope_profiles.
type ProfilesResult struct {
	Default  string          `json:"default"`
	Profiles []scope.Profile `json:"profiles"`
}

func (s *Server) handleScopeProfiles() (interface{}, error) {
	return &ProfilesResult{
		Default:  s.cfg.Analysis.DefaultProfile,
		Profiles: s.profiles.Profiles(),
	}, nil
}
