package main

import (
	"context"
	"flag"
	"fmt"
	"mandelbrot/coordinator"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/worker"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	coordinatorFile, partition, profileMode, settingsFile, workerFile string
	enableGops, verbose                                                bool
	maxIterations                                                      uint
	workerCount                                                        int
)

func main() {
	parseArguments()
	logger := misc.NewLogger("Main", verbose)

	stopDiagnostics := startDiagnostics(logger)
	defer stopDiagnostics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if workerFile != "" {
		startWorker(ctx, logger)
		return
	}

	if flag.NArg() != 4 {
		printUsage()
	}
	fileName := flag.Arg(0)

	width, height, ok := misc.ParseBounds(flag.Arg(1))
	if !ok {
		logger.Fatal(fmt.Sprintf("Error parsing image dimensions %q", flag.Arg(1)))
	}
	upperLeft, ok := misc.ParseComplex(flag.Arg(2))
	if !ok {
		logger.Fatal(fmt.Sprintf("Error parsing upper left corner point %q", flag.Arg(2)))
	}
	lowerRight, ok := misc.ParseComplex(flag.Arg(3))
	if !ok {
		logger.Fatal(fmt.Sprintf("Error parsing lower right corner point %q", flag.Arg(3)))
	}

	bounds := mandelbrot.Bounds{Width: width, Height: height}
	viewport := mandelbrot.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight}

	var image mandelbrot.Image
	var err error
	if coordinatorFile != "" {
		image, err = renderRemote(ctx, bounds, viewport)
	} else {
		m := mandelbrot.NewMandelbrot(loadMandelbrotSettings(logger))
		image, err = m.Render(bounds, viewport)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Render failed: %s", err))
		stopDiagnostics()
		os.Exit(2)
	}

	err = misc.WriteImage(fileName, image.Gray())
	if err != nil {
		logger.Error(fmt.Sprintf("Unable to write image: %s", err))
		stopDiagnostics()
		os.Exit(3)
	}
	logger.Info(fmt.Sprintf("Saved image to %s", fileName))
}

func renderRemote(ctx context.Context, bounds mandelbrot.Bounds, viewport mandelbrot.Viewport) (mandelbrot.Image, error) {
	settings := coordinator.NewSettings(coordinatorFile)
	settings.Verbose = settings.Verbose || verbose

	c, err := coordinator.NewCoordinator(settings)
	if err != nil {
		return mandelbrot.Image{}, err
	}
	defer c.Close()

	return c.Render(ctx, bounds, viewport)
}

func startWorker(ctx context.Context, logger bslogger.Logger) {
	settings := worker.NewSettings(workerFile)
	settings.Verbose = settings.Verbose || verbose

	w, err := worker.NewWorker(settings)
	misc.CheckErrorf(err, logger, misc.Fatal, "Creating worker")
	misc.CheckErrorf(w.Run(), logger, misc.Fatal, "Starting worker")

	// Serve until interrupted
	<-ctx.Done()
	misc.CheckErrorf(w.Stop(), logger, misc.Warning, "Stopping worker")
}
