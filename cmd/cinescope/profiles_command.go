package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/scope"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List false-color profiles and their brightness bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			set, err := ctx.profileSet()
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"default":  cfg.Analysis.DefaultProfile,
					"profiles": set.Profiles(),
				})
			}

			headers := []string{"Profile", "Default", "Low %", "High %", "Color"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, profileRows(set.Profiles(), cfg.Analysis.DefaultProfile), aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print profiles as JSON")
	return cmd
}

// profileRows lists one row per band; the profile name appears on its first
// row only.
func profileRows(profiles []scope.Profile, defaultName string) [][]string {
	var rows [][]string
	for _, p := range profiles {
		def := yesNo(p.Name == defaultName)
		if p.PassThrough() {
			rows = append(rows, []string{p.Name, def, "", "", "pass-through"})
			continue
		}
		for i, b := range p.Bands {
			name := ""
			if i == 0 {
				name = p.Name
			} else {
				def = ""
			}
			rows = append(rows, []string{name, def, formatPercent(b.Low), formatPercent(b.High), imaging.DescribeColor(b.Color).Hex})
		}
	}
	return rows
}

func formatPercent(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
