// Package extract drives rpf-cli over a located GTA V installation,
// unpacking every known radio station archive into a temporary root that
// the organizer then consumes.
package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gtaradio/internal/fileutil"
	"gtaradio/internal/logging"
	"gtaradio/internal/services/rpfcli"
	"gtaradio/internal/stations"
)

const (
	archiveExt  = ".rpf"
	radioPrefix = "RADIO_"
)

// baseAudioPath holds the base game's station archives, relative to the
// install directory.
var baseAudioPath = filepath.Join("x64", "audio", "sfx")

// dlcPacksPath is the root under which DLC packs bury their radio archives.
var dlcPacksPath = filepath.Join("update", "x64", "dlcpacks")

// Summary counts the outcome of one extraction pass.
type Summary struct {
	Extracted int
	Failed    int
}

// Extractor unpacks station archives from a game installation.
type Extractor struct {
	client rpfcli.Client
	logger *slog.Logger
}

// New constructs an extractor. A nil logger is replaced with a no-op one.
func New(client rpfcli.Client, logger *slog.Logger) *Extractor {
	return &Extractor{
		client: client,
		logger: logging.NewComponentLogger(logger, "extract"),
	}
}

// PrepareTempDir makes sure tempRoot starts empty: a stale directory left
// behind by an interrupted run is removed before the fresh one is created.
func PrepareTempDir(tempRoot string) error {
	if err := os.RemoveAll(tempRoot); err != nil {
		return fmt.Errorf("remove stale extraction directory: %w", err)
	}
	if err := fileutil.EnsureDir(tempRoot); err != nil {
		return fmt.Errorf("create extraction directory: %w", err)
	}
	return nil
}

// Run extracts every known station archive found under installDir into
// tempRoot, base game first, then a recursive DLC scan. Individual archive
// failures are logged and counted but never stop the pass.
func (e *Extractor) Run(ctx context.Context, installDir, tempRoot string) Summary {
	var summary Summary
	e.extractBase(ctx, installDir, tempRoot, &summary)
	e.extractDLC(ctx, installDir, tempRoot, &summary)
	return summary
}

func (e *Extractor) extractBase(ctx context.Context, installDir, tempRoot string, summary *Summary) {
	sfxDir := filepath.Join(installDir, baseAudioPath)
	if !fileutil.DirExists(sfxDir) {
		e.logger.Warn("base audio directory missing", logging.String("path", sfxDir))
		return
	}
	for _, station := range stations.All {
		if ctx.Err() != nil {
			return
		}
		archive := filepath.Join(sfxDir, station.Identifier+archiveExt)
		if _, err := os.Stat(archive); err != nil {
			continue
		}
		e.extractOne(ctx, archive, filepath.Join(tempRoot, station.Identifier), summary)
	}
}

// extractDLC scans the DLC pack tree for radio archives. The same station
// can ship in several packs; the first archive found wins, guarded only by
// the destination directory already existing.
func (e *Extractor) extractDLC(ctx context.Context, installDir, tempRoot string, summary *Summary) {
	dlcRoot := filepath.Join(installDir, dlcPacksPath)
	if !fileutil.DirExists(dlcRoot) {
		e.logger.Debug("dlc directory missing", logging.String("path", dlcRoot))
		return
	}
	walkErr := filepath.WalkDir(dlcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.logger.Warn("dlc walk error", logging.String("path", path), logging.Error(err))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasPrefix(strings.ToUpper(name), radioPrefix) || !fileutil.HasSuffixFold(name, archiveExt) {
			return nil
		}
		identifier := strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))
		if !stations.Known(identifier) {
			return nil
		}
		destDir := filepath.Join(tempRoot, identifier)
		if fileutil.DirExists(destDir) {
			e.logger.Debug("station already extracted", logging.String(logging.FieldStation, identifier))
			return nil
		}
		e.extractOne(ctx, path, destDir, summary)
		return nil
	})
	if walkErr != nil && ctx.Err() == nil {
		e.logger.Warn("dlc scan aborted", logging.Error(walkErr))
	}
}

func (e *Extractor) extractOne(ctx context.Context, archive, destDir string, summary *Summary) {
	e.logger.Info("extracting archive", logging.String("archive", filepath.Base(archive)))
	if err := e.client.Extract(ctx, archive, destDir); err != nil {
		e.logger.Warn("extraction failed", logging.String("archive", archive), logging.Error(err))
		summary.Failed++
		return
	}
	summary.Extracted++
}
