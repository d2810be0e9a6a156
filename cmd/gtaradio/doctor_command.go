package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gtaradio/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external executables are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			requirements := []deps.Requirement{
				{
					Name:        "vgmstream-cli",
					Command:     cfg.Tools.VGMStream,
					Description: "converts AWC audio containers to WAV",
				},
				{
					Name:        "rpf-cli",
					Command:     cfg.Tools.RPFCLI,
					Description: "extracts RPF archives (auto-detect only)",
					Optional:    true,
				},
			}

			rows := make([][]string, 0, len(requirements))
			var missingRequired bool
			for _, status := range deps.CheckBinaries(requirements) {
				state := "ok"
				if !status.Available {
					state = status.Detail
					if !status.Optional {
						missingRequired = true
					}
				}
				rows = append(rows, []string{status.Name, yesNo(status.Optional), state})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Tool", "Optional", "Status"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft}))
			if missingRequired {
				return fmt.Errorf("required external tools are missing; set them in the config or pass the matching flags")
			}
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
