package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gtaradio/internal/logging"
	"gtaradio/internal/services"
	"gtaradio/internal/steam"
	"gtaradio/internal/testsupport"
)

// stubConverter is a vgmstream-cli stand-in: touch the output file.
const stubConverter = `touch "$2"`

// stubExtractor is an rpf-cli stand-in: create the destination directory
// and drop one audio container into it.
const stubExtractor = `mkdir -p "$2" && touch "$2/track.awc"`

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries require a POSIX shell")
	}
}

func TestRunRequiresOutputDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	_, err := runner.Run(context.Background(), Options{VGMStream: "/opt/vgmstream-cli"})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRunRequiresVGMStream(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	_, err := runner.Run(context.Background(), Options{OutputDir: cfg.Paths.OutputDir})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRunRequiresInputOrAutoDetect(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	_, err := runner.Run(context.Background(), Options{
		OutputDir: cfg.Paths.OutputDir,
		VGMStream: "/opt/vgmstream-cli",
	})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}

	// The group metadata setup step may run, but no station directories
	// can appear.
	groupDir := filepath.Join(cfg.Paths.OutputDir, "Grand Theft Auto V")
	entries, readErr := os.ReadDir(groupDir)
	if readErr != nil {
		t.Fatalf("read group dir: %v", readErr)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			t.Fatalf("unexpected station directory %s created on aborted run", entry.Name())
		}
	}
}

func TestRunAutoDetectRequiresRPFCLI(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	_, err := runner.Run(context.Background(), Options{
		OutputDir:  cfg.Paths.OutputDir,
		VGMStream:  "/opt/vgmstream-cli",
		AutoDetect: true,
	})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRunAutoDetectInstallationNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	runner.locate = func(string) (string, error) {
		return "", steam.ErrNoInstallation
	}
	_, err := runner.Run(context.Background(), Options{
		OutputDir:  cfg.Paths.OutputDir,
		VGMStream:  "/opt/vgmstream-cli",
		RPFCLI:     "/opt/rpf-cli",
		AutoDetect: true,
	})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRunMissingInputDirIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := NewRunner(cfg, logging.NewNop())
	_, err := runner.Run(context.Background(), Options{
		InputDir:  filepath.Join(t.TempDir(), "missing"),
		OutputDir: cfg.Paths.OutputDir,
		VGMStream: "/opt/vgmstream-cli",
	})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRunWithSuppliedInput(t *testing.T) {
	requireShell(t)

	cfg := testsupport.NewConfig(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	vgm := testsupport.StubBinary(t, binDir, "vgmstream-cli", stubConverter)

	inputDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(inputDir, "RADIO_02_POP", "track1.awc"), []byte("awc"))
	testsupport.WriteFile(t, filepath.Join(inputDir, "RADIO_02_POP", "notes.txt"), []byte("skip"))

	runner := NewRunner(cfg, logging.NewNop())
	report, err := runner.Run(context.Background(), Options{
		InputDir:  inputDir,
		OutputDir: cfg.Paths.OutputDir,
		VGMStream: vgm,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Extracted {
		t.Fatal("extraction must not run for a supplied input directory")
	}
	wav := filepath.Join(report.GroupDir, "Non-Stop-Pop FM", "Songs", "track1.wav")
	if _, err := os.Stat(wav); err != nil {
		t.Fatalf("expected converted output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(inputDir, "RADIO_02_POP", "track1.awc")); err != nil {
		t.Fatalf("supplied input must never be deleted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(report.GroupDir, "stationGroupInfo.json")); err != nil {
		t.Fatalf("expected group info file: %v", err)
	}
}

func TestRunAutoDetectEndToEnd(t *testing.T) {
	requireShell(t)

	cfg := testsupport.NewConfig(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	vgm := testsupport.StubBinary(t, binDir, "vgmstream-cli", stubConverter)
	rpf := testsupport.StubBinary(t, binDir, "rpf-cli", stubExtractor)

	installDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(installDir, "x64", "audio", "sfx", "RADIO_02_POP.rpf"), []byte("rpf"))

	runner := NewRunner(cfg, logging.NewNop())
	runner.locate = func(appID string) (string, error) {
		if appID != steam.AppIDGTAV {
			t.Fatalf("unexpected app id %s", appID)
		}
		return installDir, nil
	}

	report, err := runner.Run(context.Background(), Options{
		OutputDir:  cfg.Paths.OutputDir,
		VGMStream:  vgm,
		RPFCLI:     rpf,
		AutoDetect: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !report.Extracted || report.Extraction.Extracted != 1 {
		t.Fatalf("expected one extracted archive, got %+v", report.Extraction)
	}
	wav := filepath.Join(report.GroupDir, "Non-Stop-Pop FM", "Songs", "track.wav")
	if _, err := os.Stat(wav); err != nil {
		t.Fatalf("expected converted output: %v", err)
	}
	if _, err := os.Stat(cfg.TempExtractDir()); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected temporary extraction directory to be removed")
	}
}

func TestRunRemovesTempDirEvenWhenOrganizeFails(t *testing.T) {
	requireShell(t)

	cfg := testsupport.NewConfig(t)
	binDir := filepath.Join(t.TempDir(), "bin")
	vgm := testsupport.StubBinary(t, binDir, "vgmstream-cli", "exit 1")
	rpf := testsupport.StubBinary(t, binDir, "rpf-cli", stubExtractor)

	installDir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(installDir, "x64", "audio", "sfx", "RADIO_04_PUNK.rpf"), []byte("rpf"))

	runner := NewRunner(cfg, logging.NewNop())
	runner.locate = func(string) (string, error) { return installDir, nil }

	report, err := runner.Run(context.Background(), Options{
		OutputDir:  cfg.Paths.OutputDir,
		VGMStream:  vgm,
		RPFCLI:     rpf,
		AutoDetect: true,
	})
	// Conversion failures are per-item; the run itself still completes.
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var failed int
	for _, r := range report.Stations {
		failed += r.Failed
	}
	if failed == 0 {
		t.Fatal("expected at least one failed conversion")
	}
	if _, err := os.Stat(cfg.TempExtractDir()); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected temporary extraction directory to be removed")
	}
}
