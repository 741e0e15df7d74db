package config

import "github.com/ironsheep/cinescope/internal/imaging"

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultProfile        = "ARRI"
	defaultMaxImageBytes  = imaging.DefaultMaxBytes
	defaultPreviewMaxSide = 0

	// LogLevelEnv overrides logging.level when set.
	LogLevelEnv = "CINESCOPE_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Analysis: Analysis{
			DefaultProfile:      defaultProfile,
			MaxImageBytes:       defaultMaxImageBytes,
			PreviewMaxDimension: defaultPreviewMaxSide,
		},
	}
}
