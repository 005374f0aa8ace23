// Command interp is a line-oriented front end for polynomial interpolation.
//
// Usage:
//
//	interp [-config interp.yaml]
//
// Points are entered with "add x y", the polynomial is fitted with "calc"
// and then evaluated ("eval x") or differentiated ("d1", "d2"). Every
// successful calculation also writes a pgfplots document, by default
// interpolation.tex on the Desktop. Type "help" for the full command list.
//
// Environment overrides: INTERP_EXPORT_DIR, INTERP_EXPORT_FILE,
// INTERP_EXPORT_ENABLED, INTERP_PIVOT_TOLERANCE, INTERP_VERBOSE.
package main

import (
	"flag"
	"os"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/lvlath-interp/config"
	"github.com/katalvlaran/lvlath-interp/export"
	"github.com/katalvlaran/lvlath-interp/session"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err == nil {
		err = cfg.ApplyEnv(os.LookupEnv)
	}
	if err != nil {
		l.NewConsoleLoggerWrapper().WithFields(l.ErrorField(err), l.StringField("path", *cfgPath)).Fatal("load config failed")
	}

	logger := l.NewNopLoggerWrapper()
	if cfg.Log.Verbose {
		logger = l.NewConsoleLoggerWrapper()
	}

	if err = newShell(newSession(cfg, logger), os.Stdout, logger).run(os.Stdin); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("read input failed")
	}
}

// newSession wires the configured exporter and solver options into a Session.
func newSession(cfg config.Config, logger l.Wrapper) *session.Session {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithSolverOptions(cfg.SolverOptions()...),
	}
	if cfg.Export.Enabled {
		opts = append(opts, session.WithExporter(export.NewFileExporter(cfg.Export.Dir, cfg.Export.File, logger)))
	}

	return session.New(opts...)
}
