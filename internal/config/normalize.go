package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.StagingDir = strings.TrimSpace(c.Paths.StagingDir); c.Paths.StagingDir == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if c.Paths.OutputDir = strings.TrimSpace(c.Paths.OutputDir); c.Paths.OutputDir != "" {
		if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
			return fmt.Errorf("paths.output_dir: %w", err)
		}
	}

	if c.Tools.VGMStream = strings.TrimSpace(c.Tools.VGMStream); c.Tools.VGMStream != "" {
		if c.Tools.VGMStream, err = expandPath(c.Tools.VGMStream); err != nil {
			return fmt.Errorf("tools.vgmstream: %w", err)
		}
	}
	if c.Tools.RPFCLI = strings.TrimSpace(c.Tools.RPFCLI); c.Tools.RPFCLI != "" {
		if c.Tools.RPFCLI, err = expandPath(c.Tools.RPFCLI); err != nil {
			return fmt.Errorf("tools.rpf_cli: %w", err)
		}
	}

	if c.Steam.Root = strings.TrimSpace(c.Steam.Root); c.Steam.Root != "" {
		if c.Steam.Root, err = expandPath(c.Steam.Root); err != nil {
			return fmt.Errorf("steam.root: %w", err)
		}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
