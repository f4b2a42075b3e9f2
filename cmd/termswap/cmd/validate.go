package cmd

import (
	"fmt"
	"strings"

	"termswap/internal/core/termpack"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dictionary for chained rewrites and duplicate sources",
		Long: "Loads the dictionary the other commands would use and reports targets that\n" +
			"are rewritten again by another term and sources defined in more than one\n" +
			"file. Exits 1 when a problem is found.",
		Args: cobra.NoArgs,
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, _ []string) error {
	r, err := termpack.Validate(a.options(cmd).Dictionary())
	if err != nil {
		return err
	}

	if a.json {
		if err := writeJSON(a.out, r); err != nil {
			return err
		}
	} else {
		fmt.Fprint(a.out, formatReport(r))
	}
	if !r.OK() {
		return exitStatus{exitFindings}
	}
	return nil
}

func formatReport(r termpack.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s checked, %s protected\n", plural(r.Terms, "term"), plural(len(r.Protected), "identity term"))
	for _, c := range r.TargetConflicts {
		fmt.Fprintf(&sb, "chain: %q → %q → %q\n", c.Source, c.Target, c.Next)
	}
	for _, d := range r.Duplicates {
		fmt.Fprintf(&sb, "duplicate: %q in %s (targets %s)\n", d.Source, strings.Join(d.Files, ", "), strings.Join(d.Targets, ", "))
	}
	if r.OK() {
		sb.WriteString("ok\n")
	}
	return sb.String()
}
