package task

import "fmt"

// BandRequest asks a worker to render one band. The corners are the band's
// own sub-viewport, not the viewport of the whole image.
type BandRequest struct {
	Band          Band
	LowerRight    complex128
	MaxIterations uint
	UpperLeft     complex128
}

func (r *BandRequest) String() string {
	output := "{BandRequest "
	output += fmt.Sprintf("Band: %s ", r.Band.String())
	output += fmt.Sprintf("UpperLeft: %v ", r.UpperLeft)
	output += fmt.Sprintf("LowerRight: %v ", r.LowerRight)
	output += fmt.Sprintf("MaxIterations: %d}", r.MaxIterations)
	return output
}

// Key identifies requests that produce the same pixels.
func (r *BandRequest) Key() string {
	return fmt.Sprintf("%dx%d|%v|%v|%d", r.Band.Width, r.Band.Height, r.UpperLeft, r.LowerRight, r.MaxIterations)
}

// BandReply carries the zstd compressed pixels of a rendered band.
type BandReply struct {
	BandID     int
	Compressed []byte
	Size       int
}
