package main

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cinescope/internal/config"
	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/logging"
	"github.com/ironsheep/cinescope/internal/scope"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// loadImage decodes path within the configured size limit.
func (c *commandContext) loadImage(path string) (image.Image, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return imaging.NewImageCache(cfg.Analysis.MaxImageBytes).Load(path)
}

func (c *commandContext) profileSet() (*scope.ProfileSet, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	set, err := cfg.ProfileSet()
	if err != nil {
		return nil, fmt.Errorf("build profiles: %w", err)
	}
	return set, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
