package worker

import (
	"fmt"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

const DefaultPort = 51001

type Settings struct {
	logger bslogger.Logger

	HeartBeat     time.Duration
	ServerAddress string
	Transport     string
	Verbose       bool
}

func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: misc.NewLogger("WorkerSettings", false),
	}
	misc.CheckError(misc.LoadSettings(settingsFile, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nWorker settings\n"
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Transport: %s\n", s.Transport)
	output += fmt.Sprintf("Heart Beat: %s\n", s.HeartBeat)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("WorkerSettings", s.Verbose)

	if s.HeartBeat <= 0 {
		s.HeartBeat = 30 * time.Second
	}
	if s.ServerAddress == "" {
		address, err := misc.GetLocalAddress()
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Falling back to loopback - %s", err))
			address = "127.0.0.1"
		}
		s.ServerAddress = fmt.Sprintf("%s:%d", address, DefaultPort)
	}
	if s.Transport == "" {
		s.Transport = rpc.Tcp
	}
	if s.Transport != rpc.Tcp && s.Transport != rpc.Http {
		return fmt.Errorf("unknown transport %q", s.Transport)
	}
	return nil
}
