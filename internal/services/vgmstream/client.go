package vgmstream

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"gtaradio/internal/services"
)

var commandContext = exec.CommandContext

// Client defines audio container transcoding behaviour.
type Client interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the vgmstream-cli command-line transcoder.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "vgmstream-cli"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Convert transcodes one container file into outputPath. Tool output is
// suppressed; failures carry a stderr tail when one was produced.
func (c *CLI) Convert(ctx context.Context, inputPath, outputPath string) error {
	if strings.TrimSpace(inputPath) == "" {
		return errors.New("input path required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	cmd := commandContext(ctx, c.binary, "-o", outputPath, inputPath) //nolint:gosec
	if detail, err := services.RunQuiet(cmd); err != nil {
		if detail != "" {
			return fmt.Errorf("vgmstream convert %s: %w: %s", inputPath, err, detail)
		}
		return fmt.Errorf("vgmstream convert %s: %w", inputPath, err)
	}
	return nil
}

var _ Client = (*CLI)(nil)
