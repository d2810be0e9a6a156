package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"gtaradio/internal/config"
	"gtaradio/internal/extract"
	"gtaradio/internal/fileutil"
	"gtaradio/internal/logging"
	"gtaradio/internal/organizer"
	"gtaradio/internal/services"
	"gtaradio/internal/services/rpfcli"
	"gtaradio/internal/services/vgmstream"
	"gtaradio/internal/steam"
)

// Options are the per-run settings after merging CLI flags over the config.
type Options struct {
	InputDir   string
	OutputDir  string
	VGMStream  string
	RPFCLI     string
	AutoDetect bool
}

// Report summarizes a completed run.
type Report struct {
	RunID      string
	GroupDir   string
	InputDir   string
	Extracted  bool
	Extraction extract.Summary
	Stations   []organizer.StationResult
}

// Runner sequences the linear pipeline: resolve input, extract when
// auto-detecting, organize, clean up.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger

	// locate is swappable in tests to avoid touching a real Steam install.
	locate func(appID string) (string, error)
}

// NewRunner constructs a runner. A nil logger is replaced with a no-op one.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	runner := &Runner{cfg: cfg, logger: logger}
	runner.locate = func(appID string) (string, error) {
		var opts []steam.Option
		if cfg.Steam.Root != "" {
			opts = append(opts, steam.WithRoot(cfg.Steam.Root))
		}
		return steam.NewLocator(logger, opts...).Locate(appID)
	}
	return runner
}

// Run executes one full pipeline pass.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.OutputDir == "" {
		return nil, services.Wrap(services.ErrConfiguration, "run", "validate options", "output directory is required (--output)", nil)
	}
	if opts.VGMStream == "" {
		return nil, services.Wrap(services.ErrConfiguration, "run", "validate options", "vgmstream-cli path is required (--vgmstream)", nil)
	}

	report := &Report{RunID: uuid.NewString()}
	logger := r.logger.With(logging.String(logging.FieldRunID, report.RunID))

	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "run", "prepare staging", "could not create staging directory", err)
	}

	lock := flock.New(r.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "run", "acquire lock", "could not acquire run lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "run", "acquire lock", "another gtaradio run is already in progress", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	// Group metadata is written before anything else so a pre-existing
	// file is never touched by whatever follows.
	report.GroupDir = filepath.Join(opts.OutputDir, organizer.GroupName)
	if err := organizer.EnsureGroupInfo(report.GroupDir); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "run", "prepare output", "could not prepare group directory", err)
	}

	inputDir, cleanup, err := r.resolveInput(ctx, logger, opts, report)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return nil, err
	}
	report.InputDir = inputDir

	converter := vgmstream.NewCLI(vgmstream.WithBinary(opts.VGMStream))
	results, err := organizer.New(converter, logger).OrganizeAll(ctx, inputDir, report.GroupDir)
	report.Stations = results
	if err != nil {
		return report, services.Wrap(services.ErrTransient, "organize", "process stations", "organization did not complete", err)
	}

	logger.Info("run completed", logging.String("output", report.GroupDir))
	return report, nil
}

// resolveInput decides between a user-supplied directory and the
// auto-detect extraction path. The returned cleanup removes the temporary
// extraction directory and runs even when organization fails; it is nil on
// the user-supplied path, which this tool never deletes.
func (r *Runner) resolveInput(ctx context.Context, logger *slog.Logger, opts Options, report *Report) (string, func(), error) {
	if opts.InputDir != "" {
		if !fileutil.DirExists(opts.InputDir) {
			return "", nil, services.Wrap(services.ErrConfiguration, "run", "resolve input", fmt.Sprintf("input directory %s does not exist", opts.InputDir), nil)
		}
		return opts.InputDir, nil, nil
	}

	if !opts.AutoDetect {
		return "", nil, services.Wrap(services.ErrConfiguration, "run", "resolve input", "provide --input or use --auto-detect", nil)
	}
	if opts.RPFCLI == "" {
		return "", nil, services.Wrap(services.ErrConfiguration, "run", "resolve input", "rpf-cli path is required for automatic extraction (--rpf-cli)", nil)
	}

	logger.Info("auto-detecting installation")
	installDir, err := r.locate(steam.AppIDGTAV)
	if err != nil {
		return "", nil, services.Wrap(services.ErrNotFound, "run", "locate installation", "no GTA V installation found in Steam libraries", err)
	}
	logger.Info("installation found", logging.String("path", installDir))

	tempDir := r.cfg.TempExtractDir()
	if err := extract.PrepareTempDir(tempDir); err != nil {
		return "", nil, services.Wrap(services.ErrTransient, "extract", "prepare temp dir", "could not prepare extraction directory", err)
	}
	cleanup := func() {
		logger.Info("cleaning up extraction directory")
		if err := os.RemoveAll(tempDir); err != nil {
			logger.Warn("failed to remove extraction directory", logging.String("path", tempDir), logging.Error(err))
		}
	}

	client := rpfcli.NewCLI(rpfcli.WithBinary(opts.RPFCLI))
	report.Extracted = true
	report.Extraction = extract.New(client, logger).Run(ctx, installDir, tempDir)

	return tempDir, cleanup, nil
}
