package check

import (
	"context"
	"log/slog"
	"os"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MacroMatcher detects invocations of known-buggy macros, i.e. a
// macro name followed by a single string literal argument.
type MacroMatcher struct {
	pats []*regexp.Regexp
}

// NewMacroMatcher compiles one pattern per macro name. Names are
// quoted, so regex metacharacters in config values match literally.
func NewMacroMatcher(macros []string) *MacroMatcher {
	m := &MacroMatcher{}
	for _, name := range macros {
		if name == "" {
			continue
		}
		pat := `\b` + regexp.QuoteMeta(name) + `\("[^)]*"\)`
		m.pats = append(m.pats, regexp.MustCompile(pat))
	}
	return m
}

// Match reports whether the raw file content invokes any macro. The
// scan works on bytes, so files the decoder would reject can still
// be matched.
func (m *MacroMatcher) Match(raw []byte) bool {
	for _, p := range m.pats {
		if p.Match(raw) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m *MacroMatcher) Empty() bool { return len(m.pats) == 0 }

// Params configure an Engine.
type Params struct {
	// Config selects and parameterizes rules. Nil means all
	// registered rules with default options.
	Config *Config
	// Codec converts file bytes to text. Nil means utf-8.
	Codec *Codec
	// Logger receives rule activation notices. Nil discards them.
	Logger *slog.Logger
	// Jobs caps concurrent file checks. Values below two run the
	// targets serially.
	Jobs int
	// SkipMacros lists macro names whose invocation excludes a file
	// from checking entirely.
	SkipMacros []string
}

// Engine applies every active rule to every applicable target. A
// run never stops at the first violating file; callers always get
// the full report.
type Engine struct {
	config *Config
	codec  *Codec
	logger *slog.Logger
	jobs   int
	rules  []RuleDef
	skip   *MacroMatcher
}

// NewEngine resolves the active rule set from the global registry.
// Disabled rules and rules whose required options are missing are
// left out, the latter with a warning.
func NewEngine(p Params) (*Engine, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = NewConfig()
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	codec := p.Codec
	if codec == nil {
		var err error
		codec, err = NewCodec("utf-8")
		if err != nil {
			return nil, err
		}
	}

	var rules []RuleDef
	for _, def := range GetAll() {
		if cfg.IsDisabled(def.ID) {
			logger.Debug("rule disabled", "rule", def.ID)
			continue
		}
		if def.Check == nil {
			logger.Warn("rule has no check function, skipping", "rule", def.ID)
			continue
		}
		if key, ok := requirementsMet(def, cfg.GetRuleOptions(def.ID)); !ok {
			logger.Warn("rule deactivated, required option not set",
				"rule", def.ID, "option", key)
			continue
		}
		rules = append(rules, def)
	}

	return &Engine{
		config: cfg,
		codec:  codec,
		logger: logger,
		jobs:   p.Jobs,
		rules:  rules,
		skip:   NewMacroMatcher(p.SkipMacros),
	}, nil
}

// ActiveRules returns the rules the engine will apply, sorted by ID.
func (e *Engine) ActiveRules() []RuleDef {
	out := make([]RuleDef, len(e.rules))
	copy(out, e.rules)
	return out
}

// Run checks every target and returns the aggregated report. The
// outcome order follows the target order regardless of Jobs, so
// reports are deterministic. The error is non-nil only when the
// context is canceled; per-file problems surface as violations.
func (e *Engine) Run(ctx context.Context, targets []Target) (*Report, error) {
	results := make([]fileResult, len(targets))

	if e.jobs > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.jobs)
		for i, t := range targets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = e.checkTarget(t)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, t := range targets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = e.checkTarget(t)
		}
	}

	report := &Report{RunID: uuid.New().String()}
	for i, res := range results {
		if res.skipped {
			report.Skipped = append(report.Skipped, targets[i].RelPath)
			continue
		}
		report.Files++
		report.Outcomes = append(report.Outcomes, res.outcomes...)
	}
	return report, nil
}

type fileResult struct {
	outcomes []Outcome
	skipped  bool
}

func (e *Engine) checkTarget(t Target) fileResult {
	applicable := e.applicableRules(t)

	raw, err := os.ReadFile(t.Path)
	if err != nil {
		e.logger.Debug("read failed", "path", t.RelPath, "error", err)
		return fileResult{outcomes: violateAll(applicable, t, "read error: "+err.Error())}
	}
	if e.skip.Match(raw) {
		e.logger.Debug("target skipped, buggy macro invocation", "path", t.RelPath)
		return fileResult{skipped: true}
	}

	content, err := e.codec.Decode(raw)
	if err != nil {
		e.logger.Debug("decode failed", "path", t.RelPath, "error", err)
		return fileResult{outcomes: violateAll(applicable, t, "decode error")}
	}
	content = NormalizeNewlines(content)

	outcomes := make([]Outcome, 0, len(applicable))
	for _, rule := range applicable {
		outcomes = append(outcomes, rule.Check(t, content, e.config.GetRuleOptions(rule.ID)))
	}
	return fileResult{outcomes: outcomes}
}

func (e *Engine) applicableRules(t Target) []RuleDef {
	var out []RuleDef
	for _, rule := range e.rules {
		if rule.AppliesTo(t) {
			out = append(out, rule)
		}
	}
	return out
}

func violateAll(rules []RuleDef, t Target, reason string) []Outcome {
	outcomes := make([]Outcome, 0, len(rules))
	for _, rule := range rules {
		outcomes = append(outcomes, Violation(rule.ID, t, reason))
	}
	return outcomes
}

func requirementsMet(def RuleDef, opts Options) (string, bool) {
	for _, key := range def.Requires {
		if !optionSet(opts, key) {
			return key, false
		}
	}
	return "", true
}

// optionSet reports whether an option holds a usable value. Empty
// strings and empty lists count as unset.
func optionSet(opts Options, key string) bool {
	if opts == nil {
		return false
	}
	raw, ok := opts[key]
	if !ok || raw == nil {
		return false
	}
	switch v := raw.(type) {
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}
