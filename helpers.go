package main

import (
	"flag"
	"fmt"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/task"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/google/gops/agent"
	"github.com/pkg/profile"
)

const usage = `Usage: mandelbrot [flags] FILE PIXELS UPPERLEFT LOWERRIGHT
       mandelbrot [flags] -worker SETTINGS

Example: mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20

The output format follows the extension of FILE: png, jpg, bmp or tiff.

Flags:
`

func parseArguments() {
	flag.StringVar(&coordinatorFile, "coordinator", "", "Json settings file; render on the remote workers it lists")
	flag.BoolVar(&enableGops, "gops", false, "Start a gops diagnostics agent")
	flag.UintVar(&maxIterations, "limit", mandelbrot.DefaultMaxIterations, "Iterations to run before a point counts as not escaping")
	flag.StringVar(&partition, "partition", task.Ceil.String(), "Rows per band: ceil or reference (height/workers + 1)")
	flag.StringVar(&profileMode, "profile", "", "Write a cpu, mem or trace profile to the current directory")
	flag.StringVar(&settingsFile, "settings", "", "Json file with mandelbrot settings")
	flag.BoolVar(&verbose, "verbose", false, "Log debug output")
	flag.StringVar(&workerFile, "worker", "", "Json settings file; run as a band worker")
	flag.IntVar(&workerCount, "workers", mandelbrot.DefaultWorkers, "Number of bands rendered in parallel")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.Parse()
}

// loadMandelbrotSettings reads the -settings file when given, then applies
// any flags set on the command line on top of it.
func loadMandelbrotSettings(logger bslogger.Logger) mandelbrot.Settings {
	settings := mandelbrot.Settings{
		MaxIterations: mandelbrot.DefaultMaxIterations,
		Workers:       mandelbrot.DefaultWorkers,
	}
	if settingsFile != "" {
		misc.CheckErrorf(misc.LoadSettings(settingsFile, &settings), logger, misc.Fatal, "Loading mandelbrot settings")
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			settings.MaxIterations = maxIterations
		case "partition":
			settings.Partition, err = task.ParsePolicy(partition)
		case "workers":
			settings.Workers = workerCount
		}
	})
	misc.CheckErrorf(err, logger, misc.Fatal, "Parsing -partition")

	if settings.Workers < 1 {
		logger.Fatal(fmt.Sprintf("Worker count must be at least 1, got %d", settings.Workers))
	}
	settings.Verbose = settings.Verbose || verbose
	return settings
}

// startDiagnostics starts the profiler and gops agent requested on the
// command line. The returned function stops them.
func startDiagnostics(logger bslogger.Logger) func() {
	var stops []func()

	if profileMode != "" {
		var mode func(*profile.Profile)
		switch profileMode {
		case "cpu":
			mode = profile.CPUProfile
		case "mem":
			mode = profile.MemProfile
		case "trace":
			mode = profile.TraceProfile
		default:
			logger.Fatal(fmt.Sprintf("Unknown profile %q", profileMode))
		}
		p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
		stops = append(stops, p.Stop)
	}

	if enableGops {
		misc.CheckErrorf(agent.Listen(agent.Options{}), logger, misc.Fatal, "Starting gops agent")
		logger.Info("Started gops agent")
		stops = append(stops, agent.Close)
	}

	return func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}
}

func printUsage() {
	flag.Usage()
	os.Exit(1)
}
