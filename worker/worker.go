package worker

import (
	"errors"
	"fmt"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"mandelbrot/task"
	"sync/atomic"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/zeromicro/go-zero/core/syncx"
)

// Worker renders bands for a coordinator over rpc.
type Worker struct {
	bandsRendered atomic.Int64
	done          chan struct{}
	logger        bslogger.Logger
	requests      syncx.SingleFlight
	settings      Settings
	startTime     time.Time

	Server rpc.Server
}

func NewWorker(settings Settings) (*Worker, error) {
	err := settings.Verify()
	if err != nil {
		return nil, err
	}

	worker := &Worker{
		done:     make(chan struct{}),
		logger:   misc.NewLogger(fmt.Sprintf("Worker %s", settings.ServerAddress), settings.Verbose),
		requests: syncx.NewSingleFlight(),
		settings: settings,
	}

	worker.Server, err = rpc.NewServer(settings.Transport, worker, settings.ServerAddress, "WorkerServer", settings.Verbose)
	if err != nil {
		return nil, err
	}

	return worker, nil
}

func (w *Worker) Address() string {
	return w.Server.Address()
}

func (w *Worker) Run() error {
	err := w.Server.Run()
	if err != nil {
		return err
	}
	w.startTime = time.Now()
	w.logger.Info(fmt.Sprintf("Rendering bands at %s", w.Address()))

	go w.tickers()
	return nil
}

func (w *Worker) Stop() error {
	close(w.done)
	w.logger.Info(fmt.Sprintf("Rendered %d bands in %s", w.bandsRendered.Load(), time.Since(w.startTime)))
	w.logger.Info("Shutting down")
	return w.Server.Stop()
}

func (w *Worker) tickers() {
	heartBeat := time.NewTicker(w.settings.HeartBeat)
	defer heartBeat.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.logger.Info(fmt.Sprintf("Bands [Rendered: %d]", w.bandsRendered.Load()))
		}
	}
}

// RenderBand renders the band described by request and replies with its
// compressed pixels. Concurrent requests for the same pixels are rendered once.
func (w *Worker) RenderBand(request task.BandRequest, reply *task.BandReply) error {
	band := request.Band
	if band.Width < 0 || band.Height < 0 {
		return fmt.Errorf("invalid band %s", band.String())
	}
	if request.MaxIterations == 0 {
		return errors.New("max iterations must be positive")
	}

	compressed, err := w.requests.Do(request.Key(), func() (interface{}, error) {
		pixels := make([]byte, band.Pixels())
		bounds := mandelbrot.Bounds{Width: band.Width, Height: band.Height}
		mandelbrot.RenderBand(pixels, bounds, request.UpperLeft, request.LowerRight, request.MaxIterations)
		return misc.Compress(pixels), nil
	})
	if err != nil {
		return err
	}

	*reply = task.BandReply{
		BandID:     band.ID,
		Compressed: compressed.([]byte),
		Size:       band.Pixels(),
	}
	w.bandsRendered.Add(1)
	return nil
}

// RollCall lets a coordinator check the worker is still reachable.
func (w *Worker) RollCall(ping bool, present *bool) error {
	*present = ping
	return nil
}
