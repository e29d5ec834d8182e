package mandelbrot

import (
	"fmt"
	"mandelbrot/misc"
	"mandelbrot/task"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultMaxIterations uint = 225
	DefaultWorkers            = 8
)

type Settings struct {
	logger bslogger.Logger

	MaxIterations uint
	Partition     task.Policy
	Verbose       bool
	Workers       int
}

func (s *Settings) String() string {
	output := "{Mandelbrot settings "
	output += fmt.Sprintf("MaxIterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("Partition: %s ", s.Partition)
	output += fmt.Sprintf("Workers: %d}", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("MandelbrotSettings", s.Verbose)

	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Partition < task.Ceil || s.Partition > task.Reference {
		s.Partition = task.Ceil
	}
	if s.Workers < 1 {
		s.Workers = DefaultWorkers
	}

	// More bands than cores is fine, but worth knowing about when timing renders
	if s.Workers > runtime.NumCPU() {
		s.logger.Debug(fmt.Sprintf("Using %d workers on %d cpus", s.Workers, runtime.NumCPU()))
	}

	return nil
}
