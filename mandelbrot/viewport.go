package mandelbrot

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidBounds   = errors.New("image bounds must be positive")
	ErrInvalidViewport = errors.New("upper left corner must be left of and above the lower right corner")
	ErrInvalidWorkers  = errors.New("worker count must be at least 1")
)

// Bounds is the size of an image in pixels.
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Verify() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.Width, b.Height)
	}
	return nil
}

func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Viewport is the rectangle of the complex plane covered by an image.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

func (v Viewport) Verify() error {
	if real(v.UpperLeft) >= real(v.LowerRight) || imag(v.UpperLeft) <= imag(v.LowerRight) {
		return fmt.Errorf("%w: %v %v", ErrInvalidViewport, v.UpperLeft, v.LowerRight)
	}
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport UpperLeft: %v LowerRight: %v}", v.UpperLeft, v.LowerRight)
}

// Image is a rendered grayscale buffer, one byte per pixel in row-major order.
type Image struct {
	Bounds Bounds
	Pix    []byte
}

func NewImage(bounds Bounds) Image {
	return Image{
		Bounds: bounds,
		Pix:    make([]byte, bounds.Pixels()),
	}
}

// Gray wraps the buffer as an 8-bit grayscale image without copying it.
func (i Image) Gray() *image.Gray {
	return &image.Gray{
		Pix:    i.Pix,
		Stride: i.Bounds.Width,
		Rect:   image.Rect(0, 0, i.Bounds.Width, i.Bounds.Height),
	}
}
