package mandelbrot

import (
	"fmt"
	"mandelbrot/misc"
	"mandelbrot/task"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Boundary is the squared radius beyond which an orbit is known to diverge.
const Boundary = 4.0

type Mandelbrot struct {
	logger   bslogger.Logger
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	err := settings.Verify()
	misc.CheckError(err, settings.logger, misc.Fatal)

	mandelbrot := Mandelbrot{
		logger:   misc.NewLogger("Mandelbrot", settings.Verbose),
		settings: settings,
	}

	return mandelbrot
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

func (m *Mandelbrot) EscapeTime(c complex128) (uint, bool) {
	return EscapeTime(c, m.settings.MaxIterations)
}

func (m *Mandelbrot) RenderBand(pixels []byte, bounds Bounds, upperLeft complex128, lowerRight complex128) {
	RenderBand(pixels, bounds, upperLeft, lowerRight, m.settings.MaxIterations)
}

// Render renders the whole image split into one band per configured worker.
func (m *Mandelbrot) Render(bounds Bounds, viewport Viewport) (Image, error) {
	m.logger.Info(fmt.Sprintf("Rendering %s of %s with %d workers", bounds, viewport.String(), m.settings.Workers))
	startTime := time.Now()

	for _, band := range task.Partition(bounds.Width, bounds.Height, m.settings.Workers, m.settings.Partition) {
		m.logger.Debug(band.String())
	}

	image, err := Render(bounds, viewport, m.settings.Workers, m.settings.MaxIterations, m.settings.Partition)
	if err != nil {
		m.logger.Error(err.Error())
		return Image{}, err
	}

	m.logger.Info(fmt.Sprintf("Rendered %d pixels in %s", bounds.Pixels(), time.Since(startTime)))
	return image, nil
}

// EscapeTime iterates z = z*z + c from z = 0 at most limit times. It returns
// the zero based iteration at which |z|^2 exceeded the boundary, or false
// when the orbit stayed bounded for the whole limit.
func EscapeTime(c complex128, limit uint) (uint, bool) {
	var z complex128
	for i := uint(0); i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > Boundary {
			return i, true
		}
	}
	return 0, false
}

// PixelToPoint converts a pixel of an image of the given bounds to the point
// of the complex plane it covers. Column may equal the width and row may
// equal the height, which gives the corner just past the last pixel.
func PixelToPoint(bounds Bounds, pixel task.Coordinate, upperLeft complex128, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(pixel.Column)*width/float64(bounds.Width),
		// Rows grow downward while the imaginary axis grows upward
		imag(upperLeft)-float64(pixel.Row)*height/float64(bounds.Height),
	)
}

// RenderBand fills pixels, a bounds.Width x bounds.Height row-major buffer,
// with the gray level of every point between the two corners.
func RenderBand(pixels []byte, bounds Bounds, upperLeft complex128, lowerRight complex128, limit uint) {
	if len(pixels) != bounds.Pixels() {
		panic(fmt.Sprintf("band buffer holds %d pixels but bounds %s need %d", len(pixels), bounds, bounds.Pixels()))
	}

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, task.Coordinate{Column: column, Row: row}, upperLeft, lowerRight)
			pixels[row*bounds.Width+column] = Intensity(EscapeTime(point, limit))
		}
	}
}

// BandViewport returns the part of viewport covered by band, measured on the
// whole image so neighbouring bands share their edges exactly.
func BandViewport(bounds Bounds, viewport Viewport, band task.Band) Viewport {
	return Viewport{
		UpperLeft:  PixelToPoint(bounds, task.Coordinate{Column: 0, Row: band.Top}, viewport.UpperLeft, viewport.LowerRight),
		LowerRight: PixelToPoint(bounds, task.Coordinate{Column: bounds.Width, Row: band.Top + band.Height}, viewport.UpperLeft, viewport.LowerRight),
	}
}
