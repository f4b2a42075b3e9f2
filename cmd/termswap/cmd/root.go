package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"termswap/internal/core/textcodec"
	"termswap/internal/core/version"
	"termswap/internal/modkit"
	"termswap/internal/platform/config"
	"termswap/internal/platform/config/raw"
	"termswap/internal/platform/logger"
	"termswap/internal/services/convert/domain"
	convertmod "termswap/internal/services/convert/module"

	"github.com/spf13/cobra"
)

// app carries the streams and flag values shared by every subcommand
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *logger.Logger

	sources      []string
	dict         string
	noBuiltin    bool
	encoding     string
	outEncoding  string
	contextChars int
	workers      int
	noDirectives bool
	json         bool
	dryRun       bool
}

// Execute runs the CLI with the process streams
func Execute(ctx context.Context) error {
	opt := logger.FromEnv()
	env := raw.New().Prefix("LOG_")
	if _, set := env.Lookup("LEVEL"); !set {
		opt.Level = "warn"
	}
	if _, set := env.Lookup("FORMAT"); !set {
		opt.Format = "auto"
	}
	opt.Writer = os.Stderr
	logger.Init(opt)

	root := newRoot(&app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, log: logger.Named("cli")})
	err := root.ExecuteContext(ctx)
	var es exitStatus
	if err != nil && !errors.As(err, &es) {
		fmt.Fprintf(os.Stderr, "termswap: %v\n", err)
	}
	return err
}

func newRoot(a *app) *cobra.Command {
	if a.log == nil {
		a.log = logger.Named("cli")
	}
	root := &cobra.Command{
		Use:   "termswap",
		Short: "termswap - terminology variant replacement",
		Long: "Finds Simplified Chinese and regional terms and rewrites them into preferred\n" +
			"Traditional Chinese terminology. Longest match wins; identity entries protect\n" +
			"terms that are already correct.",
		Version:       version.Info("termswap").String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.sources, "source", nil, "builtin term sets to load (default from TERMSWAP_SOURCES or cn,hk)")
	pf.StringVar(&a.dict, "dict", "", "custom dictionary file merged over the builtin sets")
	pf.BoolVar(&a.noBuiltin, "no-builtin", false, "load only the --dict file")
	pf.BoolVar(&a.json, "json", false, "print JSON instead of text")

	root.AddCommand(
		a.checkCmd(),
		a.fixCmd(),
		a.statsCmd(),
		a.validateCmd(),
	)
	return root
}

// textFlags registers the flags used by commands that read documents
func (a *app) textFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.encoding, "encoding", textcodec.Auto, "input charset (auto only honours a BOM and otherwise expects UTF-8)")
	f.IntVar(&a.contextChars, "context", 0, "runes of context around each issue (default from TERMSWAP_CONTEXT_CHARS)")
	f.IntVar(&a.workers, "workers", 0, "documents processed concurrently (default from TERMSWAP_WORKERS)")
	f.BoolVar(&a.noDirectives, "no-directives", false, "ignore termswap:disable comments")
}

// options starts from the TERMSWAP_* environment and applies the flags the
// user actually set
func (a *app) options(cmd *cobra.Command) convertmod.Options {
	o := convertmod.FromConfig(config.New())
	f := cmd.Flags()
	if f.Changed("source") {
		o.Sources = a.sources
	}
	if f.Changed("dict") {
		o.CustomDict = a.dict
	}
	if f.Changed("no-builtin") {
		o.NoBuiltin = a.noBuiltin
	}
	if f.Changed("context") {
		o.ContextChars = max(a.contextChars, 0)
	}
	if f.Changed("workers") {
		o.Workers = max(a.workers, 1)
	}
	if f.Changed("no-directives") {
		o.Directives = !a.noDirectives
	}
	return o
}

// converter loads the dictionary and builds the convert service
func (a *app) converter(cmd *cobra.Command) (domain.ConverterPort, error) {
	o := a.options(cmd)
	if o.NoBuiltin && o.CustomDict == "" {
		return nil, fmt.Errorf("--no-builtin needs --dict")
	}
	mod, err := convertmod.New(modkit.Deps{Log: a.log}, o)
	if err != nil {
		return nil, err
	}
	return mod.Converter(), nil
}
