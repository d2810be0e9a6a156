package rpfcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gtaradio/internal/services"
)

var commandContext = exec.CommandContext

// Client defines RPF archive extraction behaviour.
type Client interface {
	Extract(ctx context.Context, archivePath, destDir string) error
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

// CLI wraps the rpf-cli command-line extractor.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "rpf-cli"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Extract unpacks one archive into destDir. The extractor's own output is
// discarded; only a tail of stderr is kept for the returned error.
func (c *CLI) Extract(ctx context.Context, archivePath, destDir string) error {
	if strings.TrimSpace(archivePath) == "" {
		return errors.New("archive path required")
	}
	if strings.TrimSpace(destDir) == "" {
		return errors.New("destination directory required")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	cmd := commandContext(ctx, c.binary, "-o", destDir, archivePath) //nolint:gosec
	if detail, err := services.RunQuiet(cmd); err != nil {
		if detail != "" {
			return fmt.Errorf("rpf-cli extract %s: %w: %s", archivePath, err, detail)
		}
		return fmt.Errorf("rpf-cli extract %s: %w", archivePath, err)
	}
	return nil
}

var _ Client = (*CLI)(nil)
