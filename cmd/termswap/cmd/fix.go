package cmd

import (
	"fmt"
	"io"
	"os"

	"termswap/internal/core/textcodec"
	"termswap/internal/services/convert/domain"

	"github.com/spf13/cobra"
)

func (a *app) fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [file...]",
		Short: "Replace terms in place",
		Long: "Rewrites each file with every term replaced. Input from stdin is written\n" +
			"to stdout. With --dry-run nothing is written and the fixed text is printed.",
		RunE: a.runFix,
	}
	a.textFlags(cmd)
	f := cmd.Flags()
	f.BoolVar(&a.dryRun, "dry-run", false, "print the fixed text instead of writing files")
	f.StringVar(&a.outEncoding, "out-encoding", textcodec.Auto,
		"charset to write (auto keeps the input charset when it can hold Traditional Chinese, keep always keeps it)")
	return cmd
}

func (a *app) runFix(cmd *cobra.Command, args []string) error {
	conv, err := a.converter(cmd)
	if err != nil {
		return err
	}
	ins, failed, err := a.readInputs(args)
	if err != nil {
		return err
	}

	sum, err := conv.Run(cmd.Context(), documents(ins), true)
	if err != nil {
		return err
	}

	written := 0
	for i, res := range sum.Results {
		in := ins[i]
		text := fixedText(res, in)
		switch {
		case in.stdin:
			if a.json {
				continue
			}
			if _, err := io.WriteString(a.out, text); err != nil {
				return err
			}
		case !res.Modified:
		case a.dryRun:
			if !a.json {
				fmt.Fprintf(a.out, "==> %s <==\n%s\n", in.path, text)
			}
		default:
			if err := a.writeBack(in, text); err != nil {
				fmt.Fprintf(a.errOut, "termswap: %s: %v\n", in.path, err)
				failed++
				continue
			}
			written++
		}
	}

	if a.json {
		if err := writeJSON(a.out, sum); err != nil {
			return err
		}
	} else if len(args) > 0 {
		verb := "fixed"
		if a.dryRun {
			verb = "would fix"
		}
		fmt.Fprintf(a.errOut, "%s %s, %s\n", verb, plural(sum.Modified, "file"), plural(sum.Issues, "replacement"))
	}

	a.log.Debug().
		Str("run_id", sum.RunID).
		Int("modified", sum.Modified).
		Int("written", written).
		Int("failed", failed).
		Msg("fix done")

	if failed > 0 {
		return exitStatus{exitError}
	}
	return nil
}

func fixedText(res domain.Result, in input) string {
	if res.Fixed != nil {
		return *res.Fixed
	}
	return in.dec.Text
}

// writeBack encodes text for in's file and replaces it, keeping its mode
func (a *app) writeBack(in input, text string) error {
	cs := textcodec.OutputCharset(a.outEncoding, in.dec)
	raw, err := textcodec.Encode(text, cs, in.dec.BOM)
	if err != nil {
		return err
	}
	if cs != in.dec.Charset {
		a.log.Info().
			Str("path", in.path).
			Str("from", textcodec.DisplayName(in.dec.Charset)).
			Str("to", textcodec.DisplayName(cs)).
			Msg("charset changed on write")
	}
	return os.WriteFile(in.path, raw, in.mode)
}
