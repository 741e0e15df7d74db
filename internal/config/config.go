package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/scope"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Analysis contains defaults and limits applied to every request.
type Analysis struct {
	DefaultProfile      string `toml:"default_profile"`
	MaxImageBytes       int64  `toml:"max_image_bytes"`
	PreviewMaxDimension int    `toml:"preview_max_dimension"`
}

// Band is one brightness range of a configured profile. High is optional;
// when omitted the band is open at the top.
type Band struct {
	Low   float64  `toml:"low"`
	High  *float64 `toml:"high"`
	Color string   `toml:"color"`
}

// Profile is a user-defined false-color profile.
type Profile struct {
	Name  string `toml:"name"`
	Bands []Band `toml:"bands"`
}

// Config encapsulates all configuration values for cinescope.
type Config struct {
	Logging  Logging   `toml:"logging"`
	Analysis Analysis  `toml:"analysis"`
	Profiles []Profile `toml:"profiles"`
}

// DefaultConfigPath returns the absolute path of the default config file.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/cinescope/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error: defaults are returned and exists reports false.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	c := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := decode(file, &c); err != nil {
			return nil, "", false, err
		}
	}

	c.normalize()

	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}

	return &c, resolvedPath, exists, nil
}

// Parse decodes and validates configuration from TOML text.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := decode(bytes.NewReader(data), &c); err != nil {
		return nil, err
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// decode reads TOML into c, rejecting keys that match no field.
func decode(r io.Reader, c *Config) error {
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if v, ok := os.LookupEnv(LogLevelEnv); ok && strings.TrimSpace(v) != "" {
		c.Logging.Level = v
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.Analysis.DefaultProfile = strings.TrimSpace(c.Analysis.DefaultProfile)
	if c.Analysis.DefaultProfile == "" {
		c.Analysis.DefaultProfile = defaultProfile
	}
	for i := range c.Profiles {
		c.Profiles[i].Name = strings.TrimSpace(c.Profiles[i].Name)
	}
}

// ExposureProfiles converts the configured profiles into engine profiles.
func (c *Config) ExposureProfiles() ([]scope.Profile, error) {
	out := make([]scope.Profile, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		sp := scope.Profile{Name: p.Name, Bands: make([]scope.Band, 0, len(p.Bands))}
		for i, b := range p.Bands {
			col, err := imaging.ParseHexColor(b.Color)
			if err != nil {
				return nil, fmt.Errorf("profiles.%s.bands[%d]: %w", p.Name, i, err)
			}
			high := math.Inf(1)
			if b.High != nil {
				high = *b.High
			}
			sp.Bands = append(sp.Bands, scope.Band{Low: b.Low, High: high, Color: col})
		}
		out = append(out, sp)
	}
	return out, nil
}

// ProfileSet returns the built-in profiles followed by the configured ones.
// A configured profile replaces a built-in of the same name.
func (c *Config) ProfileSet() (*scope.ProfileSet, error) {
	custom, err := c.ExposureProfiles()
	if err != nil {
		return nil, err
	}
	return scope.NewProfileSet(append(scope.BuiltinProfiles(), custom...)...)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("cinescope.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// SampleConfig returns the commented sample configuration file.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
