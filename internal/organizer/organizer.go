package organizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gtaradio/internal/fileutil"
	"gtaradio/internal/logging"
	"gtaradio/internal/services/vgmstream"
	"gtaradio/internal/stations"
)

const (
	// GroupName is the top-level directory GTRadio groups all stations under.
	GroupName = "Grand Theft Auto V"

	generation        = 5
	groupInfoFileName = "stationGroupInfo.json"
	songsDirName      = "Songs"
	containerExt      = ".awc"
	archiveExt        = ".rpf"
	targetExt         = ".wav"
)

// groupInfo is the fixed schema GTRadio reads from stationGroupInfo.json.
type groupInfo struct {
	Generation int    `json:"generation"`
	Name       string `json:"name"`
}

// StationResult summarizes one station's organization outcome.
type StationResult struct {
	Station   stations.Station
	SourceDir string
	Converted int
	Failed    int
	Skipped   bool
}

// Organizer arranges converted station audio into the GTRadio output layout.
type Organizer struct {
	converter vgmstream.Client
	logger    *slog.Logger
}

// New constructs an organizer. A nil logger is replaced with a no-op one.
func New(converter vgmstream.Client, logger *slog.Logger) *Organizer {
	return &Organizer{
		converter: converter,
		logger:    logging.NewComponentLogger(logger, "organizer"),
	}
}

// EnsureGroupInfo writes the group metadata file into groupDir if it does
// not exist yet. An existing file is never touched.
func EnsureGroupInfo(groupDir string) error {
	if err := fileutil.EnsureDir(groupDir); err != nil {
		return fmt.Errorf("create group directory: %w", err)
	}
	infoPath := filepath.Join(groupDir, groupInfoFileName)
	if _, err := os.Stat(infoPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check group info: %w", err)
	}
	payload, err := json.MarshalIndent(groupInfo{Generation: generation, Name: GroupName}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode group info: %w", err)
	}
	if err := os.WriteFile(infoPath, payload, 0o644); err != nil {
		return fmt.Errorf("write group info: %w", err)
	}
	return nil
}

// OrganizeAll walks the fixed station mapping and, for every station whose
// folder is present under inputDir, converts its audio containers into
// <groupDir>/<display name>/Songs. Stations without a folder are skipped;
// per-file conversion failures are counted but never stop the run.
func (o *Organizer) OrganizeAll(ctx context.Context, inputDir, groupDir string) ([]StationResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	results := make([]StationResult, 0, len(stations.All))
	for _, station := range stations.All {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := StationResult{Station: station}

		sourceDir, ok := matchStationDir(inputDir, entries, station.Identifier)
		if !ok {
			result.Skipped = true
			o.logger.Debug("no folder for station", logging.String(logging.FieldStation, station.Identifier))
			results = append(results, result)
			continue
		}
		result.SourceDir = sourceDir

		o.logger.Info("processing station",
			logging.String(logging.FieldStation, station.Identifier),
			logging.String("name", station.DisplayName),
			logging.String("source", sourceDir),
		)

		songsDir := filepath.Join(groupDir, station.DisplayName, songsDirName)
		if err := fileutil.EnsureDir(songsDir); err != nil {
			return results, fmt.Errorf("create station directories for %s: %w", station.DisplayName, err)
		}

		converted, failed := o.convertFolder(ctx, sourceDir, songsDir)
		result.Converted = converted
		result.Failed = failed
		results = append(results, result)
	}
	return results, nil
}

// matchStationDir tries each naming strategy in order: the bare identifier,
// then the identifier with the archive extension appended (folders named
// after the .rpf file itself). Comparison is case-insensitive.
func matchStationDir(inputDir string, entries []os.DirEntry, identifier string) (string, bool) {
	strategies := []string{identifier, identifier + archiveExt}
	for _, want := range strategies {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if strings.EqualFold(entry.Name(), want) {
				return filepath.Join(inputDir, entry.Name()), true
			}
		}
	}
	return "", false
}

// convertFolder recursively converts every audio container under sourceDir
// into songsDir, keeping base names and swapping the extension. Files with
// any other extension (metadata, subtitles) are ignored.
func (o *Organizer) convertFolder(ctx context.Context, sourceDir, songsDir string) (converted, failed int) {
	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			o.logger.Warn("walk error", logging.String("path", path), logging.Error(err))
			return nil
		}
		if d.IsDir() || !fileutil.HasSuffixFold(d.Name(), containerExt) {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		outputPath := filepath.Join(songsDir, fileutil.SwapExt(d.Name(), targetExt))
		if err := o.converter.Convert(ctx, path, outputPath); err != nil {
			o.logger.Warn("conversion failed", logging.String("file", path), logging.Error(err))
			failed++
			return nil
		}
		o.logger.Debug("converted", logging.String("file", d.Name()))
		converted++
		return nil
	})
	if walkErr != nil && ctx.Err() == nil {
		o.logger.Warn("station walk aborted", logging.String("dir", sourceDir), logging.Error(walkErr))
	}
	return converted, failed
}
