// SPDX-License-Identifier: MIT

package session

import (
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/lvlath-interp/export"
	"github.com/katalvlaran/lvlath-interp/matrix"
)

// Option configures a Session at construction time.
type Option func(*Session)

// WithExporter publishes the plot after every successful Calculate.
// A nil exporter disables export (the default).
func WithExporter(e export.Exporter) Option {
	return func(s *Session) { s.exporter = e }
}

// WithSolverOptions forwards options to the elimination kernel.
func WithSolverOptions(opts ...matrix.Option) Option {
	return func(s *Session) { s.solverOpts = append(s.solverOpts, opts...) }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(logger l.Wrapper) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
