package main

import (
	"log/slog"

	"sidesplit/internal/config"
	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/logging"
)

// commandContext carries lazily-loaded shared state between commands.
type commandContext struct {
	configFlag *string

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.cfgPath = resolvedPath
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// ffmpegBinary resolves the engine binary, preferring a bundled copy.
func (c *commandContext) ffmpegBinary() string {
	if c.cfg != nil && c.cfg.Tools.FFmpeg != "ffmpeg" {
		return c.cfg.Tools.FFmpeg
	}
	return ffmpeg.Locate("ffmpeg")
}

func (c *commandContext) ffprobeBinary() string {
	if c.cfg != nil && c.cfg.Tools.FFprobe != "ffprobe" {
		return c.cfg.Tools.FFprobe
	}
	return ffmpeg.Locate("ffprobe")
}
