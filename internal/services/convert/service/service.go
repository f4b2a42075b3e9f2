// Package service implements the convert service over a compiled term index
package service

import (
	"context"
	"sync"
	"time"

	"termswap/internal/core/directives"
	"termswap/internal/core/matcher"
	perr "termswap/internal/platform/errors"
	"termswap/internal/platform/logger"
	"termswap/internal/services/convert/domain"

	"github.com/google/uuid"
)

// Config for the convert service
type Config struct {
	ContextChars int  // runes of context on each side of an issue
	Workers      int  // Run concurrency
	SkipNonHan   bool // skip texts without Han characters when every source has Han
	Directives   bool // honour termswap:disable* comments
}

// DefaultConfig mirrors the env defaults
func DefaultConfig() Config {
	return Config{ContextChars: 20, Workers: 4, SkipNonHan: true, Directives: true}
}

// Service implements domain.ConverterPort
type Service struct {
	Idx   *matcher.Index
	Cfg   Config
	Info  domain.TermsInfo
	newID func() string

	hanOnly bool // every source contains Han
}

// New constructs a convert service; info is reported as is by Terms
func New(idx *matcher.Index, info domain.TermsInfo, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.ContextChars < 0 {
		cfg.ContextChars = 0
	}
	info.Loaded = idx.Len()
	info.Protected = idx.IdentityCount()
	return &Service{
		Idx:     idx,
		Cfg:     cfg,
		Info:    info,
		newID:   uuid.NewString,
		hanOnly: idx.EverySource(ContainsHan),
	}
}

// Terms satisfies domain.ConverterPort
func (s *Service) Terms() domain.TermsInfo { return s.Info }

// Check satisfies domain.ConverterPort
func (s *Service) Check(doc domain.Document) domain.Result {
	res, _ := s.process(doc)
	return res
}

// Fix satisfies domain.ConverterPort. Lines under a directive are left as they are
func (s *Service) Fix(doc domain.Document) domain.Result {
	res, found := s.process(doc)
	fixed := doc.Text
	if len(found) > 0 {
		fixed = matcher.ApplyMatches(doc.Text, matcher.Plain(found))
	}
	res.Fixed = &fixed
	res.Modified = fixed != doc.Text
	return res
}

func (s *Service) process(doc domain.Document) (domain.Result, []matcher.Located) {
	res := domain.Result{Name: doc.Name, Issues: []domain.Issue{}}
	if s.Cfg.SkipNonHan && s.hanOnly && !ContainsHan(doc.Text) {
		res.Skipped = true
		return res, nil
	}

	var ignored matcher.LineSet
	if s.Cfg.Directives {
		ignored = directives.IgnoredLines(doc.Text)
	}
	found := matcher.FindMatchesIgnoring(s.Idx, doc.Text, ignored)
	for _, m := range found {
		res.Issues = append(res.Issues, domain.Issue{
			Line:    m.Line,
			Column:  m.Column,
			Source:  m.Source,
			Target:  m.Target,
			Start:   m.Start,
			End:     m.End,
			Context: snippet(doc.Text, m.Start, m.End, s.Cfg.ContextChars),
		})
	}
	return res, found
}

// Run satisfies domain.ConverterPort. Documents are processed by at most
// Cfg.Workers goroutines; results keep the input order. When ctx ends no new
// document is started and the summary covers the ones that finished
func (s *Service) Run(ctx context.Context, docs []domain.Document, fix bool) (domain.Summary, error) {
	start := time.Now()
	sum := domain.Summary{RunID: s.newID(), Documents: len(docs)}
	ctx = logger.WithRun(ctx, sum.RunID)
	log := logger.C(ctx)

	results := make([]domain.Result, len(docs))
	done := make([]bool, len(docs))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

schedule:
	for i := range docs {
		select {
		case <-ctx.Done():
			break schedule
		case sem <- struct{}{}:
		}
		// a slot may win the race against an already closed ctx
		if ctx.Err() != nil {
			<-sem
			break schedule
		}
		wg.Add(1)
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			if fix {
				results[i] = s.Fix(docs[i])
			} else {
				results[i] = s.Check(docs[i])
			}
			done[i] = true
		}(i)
	}
	wg.Wait()

	sum.Results = make([]domain.Result, 0, len(docs))
	for i, r := range results {
		if !done[i] {
			continue
		}
		sum.Results = append(sum.Results, r)
		switch {
		case r.Skipped:
			sum.Skipped++
			continue
		case len(r.Issues) > 0:
			sum.WithIssues++
		}
		sum.Checked++
		sum.Issues += len(r.Issues)
		if r.Modified {
			sum.Modified++
		}
	}
	sum.ElapsedMS = time.Since(start).Milliseconds()

	evt := log.Info()
	if err := ctx.Err(); err != nil {
		evt = log.Warn().Err(err)
	}
	evt.Int("documents", sum.Documents).
		Int("finished", len(sum.Results)).
		Int("issues", sum.Issues).
		Int("modified", sum.Modified).
		Bool("fix", fix).
		Int64("elapsed_ms", sum.ElapsedMS).
		Msg("convert run done")

	if err := ctx.Err(); err != nil {
		return sum, perr.WithOp(perr.Wrap(err, perr.ErrorCodeCanceled, "convert: run canceled"), "convert.Run")
	}
	return sum, nil
}
