package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gtaradio/internal/stations"
)

func newStationsCommand() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:         "stations",
		Short:       "List the known radio stations and their archive names",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]stations.Station, len(stations.All))
			copy(list, stations.All)
			if byName {
				collator := collate.New(language.English, collate.IgnoreCase)
				sort.SliceStable(list, func(i, j int) bool {
					return collator.CompareString(list[i].DisplayName, list[j].DisplayName) < 0
				})
			}

			rows := make([][]string, 0, len(list))
			for _, station := range list {
				rows = append(rows, []string{station.Identifier, station.DisplayName})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Archive", "Station"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byName, "by-name", false, "Sort by display name instead of archive order")
	return cmd
}
