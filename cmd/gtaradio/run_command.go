package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gtaradio/internal/config"
	"gtaradio/internal/logging"
	"gtaradio/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		inputFlag      string
		outputFlag     string
		vgmstreamFlag  string
		rpfCLIFlag     string
		autoDetectFlag bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Convert and organize radio station audio into the GTRadio layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			opts, err := mergeRunOptions(cfg, inputFlag, outputFlag, vgmstreamFlag, rpfCLIFlag, autoDetectFlag)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, logger)
			report, runErr := runner.Run(cmd.Context(), opts)
			if report != nil && len(report.Stations) > 0 {
				printRunSummary(cmd, report)
			}
			if runErr != nil {
				return runErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. Files organized in %s\n", report.GroupDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Directory containing pre-extracted RADIO_* station folders")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination root for the GTRadio output tree")
	cmd.Flags().StringVarP(&vgmstreamFlag, "vgmstream", "v", "", "Path to the vgmstream-cli executable")
	cmd.Flags().StringVarP(&rpfCLIFlag, "rpf-cli", "r", "", "Path to the rpf-cli executable (required with --auto-detect)")
	cmd.Flags().BoolVarP(&autoDetectFlag, "auto-detect", "a", false, "Locate the GTA V installation via Steam instead of using --input")

	return cmd
}

// mergeRunOptions layers CLI flags over the configuration file values.
func mergeRunOptions(cfg *config.Config, input, output, vgmstream, rpfCLI string, autoDetect bool) (pipeline.Options, error) {
	opts := pipeline.Options{
		InputDir:   input,
		OutputDir:  output,
		VGMStream:  vgmstream,
		RPFCLI:     rpfCLI,
		AutoDetect: autoDetect,
	}
	var err error
	if opts.InputDir != "" {
		if opts.InputDir, err = config.ExpandPath(opts.InputDir); err != nil {
			return opts, fmt.Errorf("resolve --input: %w", err)
		}
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Paths.OutputDir
	} else if opts.OutputDir, err = config.ExpandPath(opts.OutputDir); err != nil {
		return opts, fmt.Errorf("resolve --output: %w", err)
	}
	if opts.VGMStream == "" {
		opts.VGMStream = cfg.Tools.VGMStream
	} else if opts.VGMStream, err = config.ExpandPath(opts.VGMStream); err != nil {
		return opts, fmt.Errorf("resolve --vgmstream: %w", err)
	}
	if opts.RPFCLI == "" {
		opts.RPFCLI = cfg.Tools.RPFCLI
	} else if opts.RPFCLI, err = config.ExpandPath(opts.RPFCLI); err != nil {
		return opts, fmt.Errorf("resolve --rpf-cli: %w", err)
	}
	return opts, nil
}

func printRunSummary(cmd *cobra.Command, report *pipeline.Report) {
	headers := []string{"Station", "Name", "Converted", "Failed"}
	rows := make([][]string, 0, len(report.Stations))
	var converted, failed, skipped int
	for _, result := range report.Stations {
		if result.Skipped {
			skipped++
			continue
		}
		converted += result.Converted
		failed += result.Failed
		rows = append(rows, []string{
			result.Station.Identifier,
			result.Station.DisplayName,
			strconv.Itoa(result.Converted),
			strconv.Itoa(result.Failed),
		})
	}

	out := cmd.OutOrStdout()
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(out, headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}))
	}
	fmt.Fprintf(out, "%d files converted, %d failed, %d stations absent\n", converted, failed, skipped)
}
