package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gtaradio/internal/config"
	"gtaradio/internal/organizer"
	"gtaradio/internal/pipeline"
	"gtaradio/internal/stations"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestStationsCommandListsMapping(t *testing.T) {
	out, err := runCLI(t, "stations")
	if err != nil {
		t.Fatalf("stations: %v", err)
	}
	requireContains(t, out, "RADIO_01_CLASS_ROCK")
	requireContains(t, out, "Los Santos Rock Radio")
}

func TestStationsCommandByName(t *testing.T) {
	out, err := runCLI(t, "stations", "--by-name")
	if err != nil {
		t.Fatalf("stations --by-name: %v", err)
	}
	blonded := strings.Index(out, "Blonded Los Santos")
	worldwide := strings.Index(out, "Worldwide FM")
	if blonded < 0 || worldwide < 0 {
		t.Fatalf("expected both stations in output:\n%s", out)
	}
	if blonded > worldwide {
		t.Fatal("expected display-name ordering with --by-name")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	// Point staging at the temp dir so validation does not touch the
	// default cache location.
	content := "[paths]\nstaging_dir = \"" + filepath.ToSlash(filepath.Join(tmp, "staging")) + "\"\n"
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestRunCommandRequiresInputSource(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := "[paths]\nstaging_dir = \"" + filepath.ToSlash(filepath.Join(tmp, "staging")) + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := runCLI(t, "--config", cfgPath, "run",
		"--output", filepath.Join(tmp, "out"),
		"--vgmstream", filepath.Join(tmp, "vgmstream-cli"),
	)
	if err == nil {
		t.Fatal("expected error when neither --input nor --auto-detect is given")
	}
}

func TestMergeRunOptionsFlagPrecedence(t *testing.T) {
	cfg := &config.Config{}
	cfg.Paths.OutputDir = "/from/config/out"
	cfg.Tools.VGMStream = "/from/config/vgmstream-cli"
	cfg.Tools.RPFCLI = "/from/config/rpf-cli"

	opts, err := mergeRunOptions(cfg, "", "/flag/out", "", "", true)
	if err != nil {
		t.Fatalf("mergeRunOptions: %v", err)
	}
	if opts.OutputDir != "/flag/out" {
		t.Fatalf("expected flag output to win, got %q", opts.OutputDir)
	}
	if opts.VGMStream != "/from/config/vgmstream-cli" {
		t.Fatalf("expected config vgmstream fallback, got %q", opts.VGMStream)
	}
	if opts.RPFCLI != "/from/config/rpf-cli" {
		t.Fatalf("expected config rpf-cli fallback, got %q", opts.RPFCLI)
	}
	if !opts.AutoDetect {
		t.Fatal("expected auto-detect to carry through")
	}
}

func TestPrintRunSummaryCountsSkipped(t *testing.T) {
	pop, _ := stations.Lookup("RADIO_02_POP")
	punk, _ := stations.Lookup("RADIO_04_PUNK")
	report := &pipeline.Report{
		Stations: []organizer.StationResult{
			{Station: pop, Converted: 3, Failed: 1},
			{Station: punk, Skipped: true},
		},
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	printRunSummary(cmd, report)

	requireContains(t, out.String(), "Non-Stop-Pop FM")
	requireContains(t, out.String(), "3 files converted, 1 failed, 1 stations absent")
	if strings.Contains(out.String(), "Channel X") {
		t.Fatal("skipped stations must not appear as table rows")
	}
}
