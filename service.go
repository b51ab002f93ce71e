package fusionfmt

import "context"

// Stage contracts. Production implementations wrap the pure functions in
// this package; tests inject fakes.
type relevanceFilter interface {
	Filter(ctx context.Context, lines []string) ([]string, int)
}

type preambleStripper interface {
	Strip(ctx context.Context, lines []string, markers []string) []string
}

type redundantRemover interface {
	Remove(ctx context.Context, lines []string, patterns []Pattern) ([]string, int)
}

type toolInjector interface {
	Inject(ctx context.Context, lines []string, db ToolDB) ([]string, int)
}

type assembler interface {
	Assemble(ctx context.Context, body []string, tmpl Templates, programNumber string) []string
}

// serviceConfig holds service-level defaults applied when an Input leaves
// the corresponding field zero.
type serviceConfig struct {
	templates Templates
	patterns  []Pattern
	markers   []string
	tools     ToolDB
}

// WithTemplates sets the default start/end blocks.
func WithTemplates(t Templates) Option {
	return func(s *Service) { s.cfg.templates = t }
}

// WithRedundantPatterns sets the default redundant-pattern set.
func WithRedundantPatterns(p []Pattern) Option {
	return func(s *Service) { s.cfg.patterns = p }
}

// WithPreambleMarkers sets the default preamble marker prefixes.
func WithPreambleMarkers(m []string) Option {
	return func(s *Service) { s.cfg.markers = m }
}

// WithToolDB sets the default tool database.
func WithToolDB(db ToolDB) Option {
	return func(s *Service) { s.cfg.tools = db }
}

// Service orchestrates the NC formatting pipeline.
type Service struct {
	cfg       serviceConfig
	relevance relevanceFilter
	preamble  preambleStripper
	redundant redundantRemover
	tools     toolInjector
	assembler assembler
}

// New creates a Service with default stages. Use options to set
// deployment-wide templates, patterns, markers, and the tool database.
func New(opts ...Option) *Service {
	s := &Service{
		relevance: &ncRelevanceFilter{},
		preamble:  &markerPreambleStripper{},
		redundant: &patternRemover{},
		tools:     &toolBlockInjector{},
		assembler: &templateAssembler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format runs the full pipeline over one NC program. Empty input is not an
// error: the result is the wrapped templates with a single terminator.
func (s *Service) Format(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	input = s.applyDefaults(input)

	lines := SplitLines(input.Source)
	stats := Stats{LinesIn: len(lines)}

	kept, _ := s.relevance.Filter(ctx, lines)
	stats.LinesKept = len(kept)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// The O-number usually lives in the preamble, so capture it before
	// stripping.
	stats.ProgramNumber = CaptureProgramNumber(kept)

	body := s.preamble.Strip(ctx, kept, input.PreambleMarkers)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, stats.Redundant = s.redundant.Remove(ctx, body, input.RedundantPatterns)
	body, _ = StripTerminators(body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, stats.ToolChanges = s.tools.Inject(ctx, body, input.Tools)
	body = CollapseBlankLines(body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := s.assembler.Assemble(ctx, body, input.Templates, stats.ProgramNumber)
	return &Result{Lines: out, Stats: stats}, nil
}

// validateInput checks the configurable fields before running the pipeline.
func (s *Service) validateInput(input Input) error {
	for _, p := range input.RedundantPatterns {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, p := range s.cfg.patterns {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults fills zero Input fields from service config, then from the
// package defaults. A non-nil empty slice is an explicit "none" and is
// left alone.
func (s *Service) applyDefaults(input Input) Input {
	if input.Templates.StartBlock == nil {
		input.Templates.StartBlock = s.cfg.templates.StartBlock
	}
	if input.Templates.StartBlock == nil {
		input.Templates.StartBlock = DefaultStartBlock()
	}
	if input.Templates.EndBlock == nil {
		input.Templates.EndBlock = s.cfg.templates.EndBlock
	}
	if input.Templates.EndBlock == nil {
		input.Templates.EndBlock = DefaultEndBlock()
	}
	if input.RedundantPatterns == nil {
		input.RedundantPatterns = s.cfg.patterns
	}
	if input.RedundantPatterns == nil {
		input.RedundantPatterns = DefaultRedundantPatterns()
	}
	if input.PreambleMarkers == nil {
		input.PreambleMarkers = s.cfg.markers
	}
	if input.PreambleMarkers == nil {
		input.PreambleMarkers = DefaultPreambleMarkers()
	}
	if input.Tools == nil {
		input.Tools = s.cfg.tools
	}
	return input
}

// Production stage implementations.

type ncRelevanceFilter struct{}

func (f *ncRelevanceFilter) Filter(ctx context.Context, lines []string) ([]string, int) {
	if ctx.Err() != nil {
		return lines, 0
	}
	return FilterRelevant(lines)
}

type markerPreambleStripper struct{}

func (p *markerPreambleStripper) Strip(ctx context.Context, lines []string, markers []string) []string {
	if ctx.Err() != nil {
		return lines
	}
	return StripPreamble(lines, markers)
}

type patternRemover struct{}

func (r *patternRemover) Remove(ctx context.Context, lines []string, patterns []Pattern) ([]string, int) {
	if ctx.Err() != nil {
		return lines, 0
	}
	return RemoveRedundant(lines, patterns)
}

type toolBlockInjector struct{}

func (t *toolBlockInjector) Inject(ctx context.Context, lines []string, db ToolDB) ([]string, int) {
	if ctx.Err() != nil {
		return lines, 0
	}
	return InjectToolBlocks(lines, db)
}

type templateAssembler struct{}

func (a *templateAssembler) Assemble(ctx context.Context, body []string, tmpl Templates, programNumber string) []string {
	if ctx.Err() != nil {
		return body
	}
	return EnsureFinalTerminator(InjectTemplates(body, tmpl, programNumber))
}
