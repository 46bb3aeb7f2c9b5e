// Package logging provides the logging facade used by the InChI wrapper.
//
// Logger wraps the subset of log/slog that the wrapper needs so applications
// can plug in their own implementation for tests or to route records into an
// existing logging system.
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "converted", logging.Abbrev("inchi", result.InChI, 64))
//
// InChI strings, AuxInfo and library log text can be arbitrarily long. Use
// Abbrev to keep log lines bounded; Discard drops everything.
package logging
