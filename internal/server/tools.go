package server

import "github.com/ironsheep/cinescope/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageSourceProperties returns the schema shared by every tool: an image is
// given either as a file path or inline as base64.
func imageSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a png, jpg, jpeg, bmp, tiff or gif file",
		},
		"image": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded image data, raw or as a data URL. Used when path is empty",
		},
	}
}

func withProperties(extra map[string]interface{}) map[string]interface{} {
	props := imageSourceProperties()
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func regionProperty() map[string]interface{} {
	coord := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "integer", "description": desc}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional rectangle to analyze instead of the whole frame",
		"properties": map[string]interface{}{
			"x1": coord("Left edge X coordinate (0-based)"),
			"y1": coord("Top edge Y coordinate (0-based)"),
			"x2": coord("Right edge X coordinate (exclusive)"),
			"y2": coord("Bottom edge Y coordinate (exclusive)"),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "scope_load",
			Description: "Load an image and return its dimensions, aspect ratio, format and channel layout.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": imageSourceProperties(),
			},
		},
		{
			Name:        "scope_analyze",
			Description: "Compute the RGB histogram (256 bins per channel) and a vectorscope trace of at most 2000 chrominance points. Optionally returns the normalized image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"region": regionProperty(),
					"region_name": map[string]interface{}{
						"type":        "string",
						"description": "Named region instead of explicit coordinates",
						"enum":        imaging.RegionNames,
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the normalized image as base64 PNG. Default true",
						"default":     true,
					},
				}),
			},
		},
		{
			Name:        "scope_false_color",
			Description: "Render a false-color exposure overlay for a camera profile (ARRI, Blackmagic, RED, Sony or a configured profile). Unknown profiles return the image unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"type": map[string]interface{}{
						"type":        "string",
						"description": "Profile name, matched case-sensitively. Defaults to the configured default profile",
					},
				}),
			},
		},
		{
			Name:        "scope_pixel_color",
			Description: "Return the RGB color of one pixel together with its vectorscope position, luma, hex code and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "scope_focus_peaking",
			Description: "Highlight in-focus edges. Pixels whose luma gradient reaches the threshold are painted in the highlight color; the rest of the image is unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Edge strength in 8-bit code values; a hard black-to-white edge reads 255. Default 48",
						"default":     48,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Highlight color as #RRGGBB. Default #FF0000",
					},
				}),
			},
		},
		{
			Name:        "scope_profiles",
			Description: "List the registered false-color profiles and their brightness bands.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
