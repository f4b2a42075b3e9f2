package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report terms that would be replaced",
		Long: "Reads each file (or stdin) and prints every replaceable term as\n" +
			"path:line:col \"source\" → \"target\". Exits 1 when anything is found.",
		RunE: a.runCheck,
	}
	a.textFlags(cmd)
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	conv, err := a.converter(cmd)
	if err != nil {
		return err
	}
	ins, failed, err := a.readInputs(args)
	if err != nil {
		return err
	}

	sum, err := conv.Run(cmd.Context(), documents(ins), false)
	if err != nil {
		return err
	}

	if a.json {
		if err := writeJSON(a.out, sum); err != nil {
			return err
		}
	} else {
		for _, res := range sum.Results {
			for _, is := range res.Issues {
				line := formatIssue(res.Name, is)
				if is.Context != "" {
					line += "  " + is.Context
				}
				fmt.Fprintln(a.out, line)
			}
		}
		if sum.Issues > 0 {
			fmt.Fprintf(a.errOut, "%s in %s\n", plural(sum.Issues, "issue"), plural(sum.WithIssues, "file"))
		}
	}

	a.log.Debug().
		Str("run_id", sum.RunID).
		Int("documents", sum.Documents).
		Int("issues", sum.Issues).
		Int64("elapsed_ms", sum.ElapsedMS).
		Msg("check done")

	switch {
	case failed > 0:
		return exitStatus{exitError}
	case sum.Issues > 0:
		return exitStatus{exitFindings}
	}
	return nil
}
