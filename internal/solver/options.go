package solver

import "github.com/kmarr21/sudoku-solver/internal/domain"

type config struct {
	useMRV bool
	useFC  bool
	useAC3 bool
	useLCV bool
}

func defaultConfig() config {
	return config{useMRV: true, useFC: true, useAC3: true, useLCV: true}
}

// Option configures an Engine. All techniques default to enabled.
type Option func(*config)

// WithMRV toggles minimum-remaining-values variable ordering. When off, the
// search picks the first empty cell in row-major order.
func WithMRV(on bool) Option {
	return func(c *config) { c.useMRV = on }
}

// WithForwardChecking toggles one-hop domain pruning after each assignment.
func WithForwardChecking(on bool) Option {
	return func(c *config) { c.useFC = on }
}

// WithAC3 toggles arc-consistency propagation, both as a pre-search pass and
// after each tentative assignment.
func WithAC3(on bool) Option {
	return func(c *config) { c.useAC3 = on }
}

// WithLCV toggles least-constraining-value ordering. When off, candidate
// values are tried in ascending order.
func WithLCV(on bool) Option {
	return func(c *config) { c.useLCV = on }
}

// FromTechniques expands a Techniques record into the matching options.
func FromTechniques(t domain.Techniques) []Option {
	return []Option{
		WithMRV(t.MRV),
		WithForwardChecking(t.ForwardChecking),
		WithAC3(t.AC3),
		WithLCV(t.LCV),
	}
}

func (c config) techniques() domain.Techniques {
	return domain.Techniques{MRV: c.useMRV, ForwardChecking: c.useFC, AC3: c.useAC3, LCV: c.useLCV}
}
