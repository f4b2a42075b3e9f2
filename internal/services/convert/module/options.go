package module

import (
	"termswap/internal/core/termpack"
	"termswap/internal/platform/config"
	"termswap/internal/services/convert/service"
)

// Options holds configuration settings for the convert module
type Options struct {
	Sources      []string
	CustomDict   string
	NoBuiltin    bool
	ContextChars int
	Workers      int
	SkipNonHan   bool
	Directives   bool
	MaxBatch     int
}

// FromConfig extracts Options from TERMSWAP_* variables
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TERMSWAP_")
	def := service.DefaultConfig()
	return Options{
		Sources:      c.MayCSVEnum("SOURCES", termpack.DefaultSources, termpack.Available()...),
		CustomDict:   c.MayString("CUSTOM_DICT", ""),
		NoBuiltin:    c.MayBool("NO_BUILTIN", false),
		ContextChars: c.MayIntRange("CONTEXT_CHARS", def.ContextChars, 0, 200),
		Workers:      c.MayIntRange("WORKERS", def.Workers, 1, 64),
		SkipNonHan:   c.MayBool("SKIP_NON_HAN", def.SkipNonHan),
		Directives:   c.MayBool("DIRECTIVES", def.Directives),
		MaxBatch:     c.MayIntRange("MAX_BATCH", 256, 1, 10000),
	}
}

// Service returns the service part of o
func (o Options) Service() service.Config {
	return service.Config{
		ContextChars: o.ContextChars,
		Workers:      o.Workers,
		SkipNonHan:   o.SkipNonHan,
		Directives:   o.Directives,
	}
}

// Dictionary returns the loader part of o
func (o Options) Dictionary() termpack.Options {
	return termpack.Options{Sources: o.Sources, CustomPath: o.CustomDict, NoBuiltin: o.NoBuiltin}
}
