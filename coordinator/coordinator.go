package coordinator

import (
	"context"
	"fmt"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"mandelbrot/task"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
)

// Coordinator renders images by sending their bands to remote workers.
type Coordinator struct {
	clients  []rpc.Client
	logger   bslogger.Logger
	settings Settings
}

func NewCoordinator(settings Settings) (*Coordinator, error) {
	err := settings.Verify()
	if err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		logger:   misc.NewLogger("Coordinator", settings.Verbose),
		settings: settings,
	}

	for _, address := range settings.WorkerAddresses {
		client, err := rpc.NewClient(settings.Transport, address, fmt.Sprintf("Client %s", address), settings.Verbose)
		if err != nil {
			coordinator.Close()
			return nil, err
		}
		err = client.Connect()
		if err != nil {
			coordinator.Close()
			return nil, fmt.Errorf("unable to reach worker %s - %w", address, err)
		}
		coordinator.clients = append(coordinator.clients, client)

		var present bool
		err = client.Call("Worker.RollCall", true, &present)
		if err != nil || !present {
			coordinator.Close()
			return nil, fmt.Errorf("worker %s missed roll call - %v", address, err)
		}
		coordinator.logger.Info(fmt.Sprintf("Worker joined: %s", address))
	}

	return coordinator, nil
}

// Render splits the image into bands exactly like a local render and has the
// workers render them, handing bands out round robin. The pixels are the same
// as a local render with the same settings. Any failed band fails the render.
func (c *Coordinator) Render(ctx context.Context, bounds mandelbrot.Bounds, viewport mandelbrot.Viewport) (mandelbrot.Image, error) {
	if err := bounds.Verify(); err != nil {
		return mandelbrot.Image{}, err
	}
	if err := viewport.Verify(); err != nil {
		return mandelbrot.Image{}, err
	}

	settings := c.settings.MandelbrotSettings
	c.logger.Info(fmt.Sprintf("Rendering %s of %s on %d workers", bounds, viewport.String(), len(c.clients)))
	startTime := time.Now()

	image := mandelbrot.NewImage(bounds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Workers)

	for _, band := range task.Partition(bounds.Width, bounds.Height, settings.Workers, settings.Partition) {
		band := band
		if band.Empty() {
			continue
		}

		pixels := image.Pix[band.Start():band.End():band.End()]
		bandViewport := mandelbrot.BandViewport(bounds, viewport, band)
		request := task.BandRequest{
			Band:          band,
			LowerRight:    bandViewport.LowerRight,
			MaxIterations: settings.MaxIterations,
			UpperLeft:     bandViewport.UpperLeft,
		}
		client := c.clients[band.ID%len(c.clients)]
		c.logger.Debug(request.String())

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var reply task.BandReply
			err := client.Call("Worker.RenderBand", request, &reply)
			if err != nil {
				return err
			}
			if reply.BandID != band.ID || reply.Size != band.Pixels() {
				return fmt.Errorf("band %d: worker replied for band %d with %d pixels", band.ID, reply.BandID, reply.Size)
			}
			return misc.DecompressInto(pixels, reply.Compressed)
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Error(err.Error())
		return mandelbrot.Image{}, fmt.Errorf("render failed: %w", err)
	}

	c.logger.Info(fmt.Sprintf("Rendered %d pixels in %s", bounds.Pixels(), time.Since(startTime)))
	return image, nil
}

func (c *Coordinator) Close() error {
	var firstErr error
	for _, client := range c.clients {
		err := client.Disconnect()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.clients = nil
	return firstErr
}
