package check

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/revelaction/udcheck/incident"
	"github.com/revelaction/udcheck/langdata"
	"github.com/revelaction/udcheck/segment"
	sent "github.com/revelaction/udcheck/sentence"
)

// Scheduler runs the checks of a Registry over sentences and files. One
// Scheduler serves one run; files must be validated in order.
type Scheduler struct {
	reg   *Registry
	cfg   Config
	state *incident.State
	langs *langdata.Registry
	lang  *langdata.Spec
	log   *slog.Logger

	units [EOF + 1][]*Check

	// OnSentence, if set, sees every block after its checks ran.
	OnSentence func(*sent.Sentence)
}

// NewScheduler prepares a run. The run language is resolved here; failing
// to resolve it is an environment error.
func NewScheduler(reg *Registry, cfg Config, state *incident.State, langs *langdata.Registry, log *slog.Logger) (*Scheduler, error) {
	if cfg.Level < 1 || cfg.Level > 5 {
		return nil, fmt.Errorf("validation level %d out of range 1..5", cfg.Level)
	}
	if cfg.Lang == "" {
		cfg.Lang = langdata.LangUD
	}
	if langs == nil {
		langs = langdata.NewRegistry(nil)
	}
	if log == nil {
		log = slog.Default()
	}

	lang, err := langs.Spec(cfg.Lang)
	if err != nil {
		return nil, fmt.Errorf("load language data: %w", err)
	}

	s := &Scheduler{
		reg:   reg,
		cfg:   cfg,
		state: state,
		langs: langs,
		lang:  lang,
		log:   log,
	}
	for u := Block; u <= EOF; u++ {
		s.units[u] = reg.upTo(cfg.Level, u)
	}
	return s, nil
}

// File validates one input stream. It returns an error only for
// environment failures; malformed input yields incidents.
func (s *Scheduler) File(name string, r io.Reader) error {
	s.state.StartFile(name)
	s.log.Info("validating file", "file", name)

	sc := segment.NewScanner(r)
	sentences := 0
	for sc.Next() {
		sentences++
		if err := s.Sentence(sc.Sentence()); err != nil {
			return err
		}
		if s.limitReached() {
			s.state.Aborted = true
			s.log.Warn("error limit reached, stopping", "file", name, "line", sc.Line(), "errors", s.state.Errors)
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := s.endFile(sc.Trailing()); err != nil {
		return err
	}
	s.log.Info("file done", "file", name, "sentences", sentences, "errors", s.state.Errors, "warnings", s.state.Warnings)
	return nil
}

func (s *Scheduler) limitReached() bool {
	return s.cfg.MaxErrors > 0 && s.state.Errors >= s.cfg.MaxErrors
}

// Sentence runs every unit check on one block.
func (s *Scheduler) Sentence(snt *sent.Sentence) error {
	ctx := &Context{
		State:    s.state,
		Config:   s.cfg,
		Lang:     s.lang,
		langs:    s.langs,
		Sentence: snt,
		SentID:   snt.SentID(),
		fail:     newFailures(),
	}
	for _, n := range snt.Nodes {
		if d := n.Col(sent.DEPS); d != "" && d != sent.Empty {
			ctx.Enhanced = true
			break
		}
	}

	defer s.state.EndSentence()

	s.runAll(ctx, Block)

	if len(snt.Lines) > 0 {
		for _, l := range snt.Lines {
			ctx.Line = l
			s.runAll(ctx, Line)
		}
		ctx.Line = sent.Line{}

		for _, n := range snt.Nodes {
			ctx.Node = n
			s.runAll(ctx, Columns)
		}
		ctx.Node = nil

		s.runAll(ctx, Tree)

		if ctx.Tree != nil {
			for _, n := range ctx.Tree.Words[1:] {
				ctx.Node = n
				s.runAll(ctx, Node)
			}
			ctx.Node = nil
		}

		s.runAll(ctx, Enhanced)
	}

	if s.OnSentence != nil {
		s.OnSentence(snt)
	}
	return ctx.err
}

func (s *Scheduler) endFile(trailing []sent.Defect) error {
	ctx := &Context{
		State:    s.state,
		Config:   s.cfg,
		Lang:     s.lang,
		langs:    s.langs,
		Trailing: trailing,
		fail:     newFailures(),
	}
	s.runAll(ctx, EOF)
	s.state.EndFile()
	return ctx.err
}

func (s *Scheduler) runAll(ctx *Context, unit Granularity) {
	line, _ := ctx.location()
	for _, c := range s.units[unit] {
		if ctx.err != nil {
			return
		}

		if p := ctx.fail.blocked(s.reg, c, line); p != "" {
			s.skip(ctx, c, p, line)
			continue
		}

		ctx.check = c
		c.Run(ctx)
		ctx.check = nil
	}
}

// skip records c as skipped. A skipped check counts as failed for the checks
// that depend on it.
func (s *Scheduler) skip(ctx *Context, c *Check, prereq string, line int) {
	s.state.Skipped[c.ID]++
	if unit := c.Unit; unit.lineScoped() {
		ctx.fail.mark(c.ID, line)
	} else {
		ctx.fail.mark(c.ID, 0)
	}
	if c.Skipped != nil {
		c.Skipped(ctx)
	}
	s.log.Debug("check skipped", "check", c.ID, "failed", prereq, "line", line, "sent_id", ctx.SentID)
}
