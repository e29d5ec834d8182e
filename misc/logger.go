package misc

import "github.com/BrugadaSyndrome/bslogger"

// NewLogger returns a named logger writing to the terminal. Verbose loggers
// also print debug lines.
func NewLogger(name string, verbose bool) bslogger.Logger {
	verbosity := bslogger.Normal
	if verbose {
		verbosity = bslogger.All
	}
	return bslogger.NewLogger(name, verbosity, nil)
}
