package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"termswap/internal/core/termpack"

	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show builtin term counts per set and file",
		Args:  cobra.NoArgs,
		RunE:  a.runStats,
	}
}

func (a *app) runStats(cmd *cobra.Command, _ []string) error {
	sets, err := termpack.Stats(a.options(cmd).Sources...)
	if err != nil {
		return err
	}
	if a.json {
		return writeJSON(a.out, sets)
	}
	fmt.Fprint(a.out, formatStats(sets))
	return nil
}

func formatStats(sets []termpack.SetStats) string {
	var sb strings.Builder
	total := 0
	for _, s := range sets {
		fmt.Fprintf(&sb, "%s  %d terms\n", s.Source, s.Total)
		for _, f := range s.Files {
			fmt.Fprintf(&sb, "  %-24s %5d", f.Name, f.Terms)
			if len(f.Categories) > 0 {
				var parts []string
				for _, c := range slices.Sorted(maps.Keys(f.Categories)) {
					parts = append(parts, fmt.Sprintf("%s=%d", c, f.Categories[c]))
				}
				sb.WriteString("  " + strings.Join(parts, " "))
			}
			sb.WriteByte('\n')
		}
		total += s.Total
	}
	fmt.Fprintf(&sb, "total  %d terms\n", total)
	return sb.String()
}
