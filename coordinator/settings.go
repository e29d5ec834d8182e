package coordinator

import (
	"errors"
	"fmt"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	MandelbrotSettings mandelbrot.Settings
	Transport          string
	Verbose            bool
	WorkerAddresses    []string
}

func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: misc.NewLogger("CoordinatorSettings", false),
	}
	misc.CheckError(misc.LoadSettings(settingsFile, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Mandelbrot: %s\n", s.MandelbrotSettings.String())
	output += fmt.Sprintf("Transport: %s\n", s.Transport)
	output += fmt.Sprintf("Worker Addresses: %v\n", s.WorkerAddresses)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("CoordinatorSettings", s.Verbose)

	s.MandelbrotSettings.Verbose = s.MandelbrotSettings.Verbose || s.Verbose
	misc.CheckError(s.MandelbrotSettings.Verify(), s.logger, misc.Fatal)
	if s.Transport == "" {
		s.Transport = rpc.Tcp
	}
	if s.Transport != rpc.Tcp && s.Transport != rpc.Http {
		return fmt.Errorf("unknown transport %q", s.Transport)
	}
	if len(s.WorkerAddresses) == 0 {
		return errors.New("no worker addresses supplied")
	}
	return nil
}
