package mandelbrot

import (
	"fmt"
	"mandelbrot/task"

	"golang.org/x/sync/errgroup"
)

// Render allocates the output buffer, splits it into workers bands and
// renders every band on its own goroutine. Each goroutine owns its slice of
// the buffer until Wait returns, so no locking is needed. A failing band
// fails the whole render and no image is returned.
func Render(bounds Bounds, viewport Viewport, workers int, limit uint, policy task.Policy) (Image, error) {
	if err := bounds.Verify(); err != nil {
		return Image{}, err
	}
	if err := viewport.Verify(); err != nil {
		return Image{}, err
	}
	if workers < 1 {
		return Image{}, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	image := NewImage(bounds)

	var g errgroup.Group
	for _, band := range task.Partition(bounds.Width, bounds.Height, workers, policy) {
		band := band
		// Cap the capacity so a band can never append into its neighbour
		pixels := image.Pix[band.Start():band.End():band.End()]
		bandBounds := Bounds{Width: band.Width, Height: band.Height}
		bandViewport := BandViewport(bounds, viewport, band)

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band %d: %v", band.ID, r)
				}
			}()
			RenderBand(pixels, bandBounds, bandViewport.UpperLeft, bandViewport.LowerRight, limit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Image{}, fmt.Errorf("render failed: %w", err)
	}
	return image, nil
}
