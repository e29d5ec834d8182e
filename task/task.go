package task

import (
	"errors"
	"fmt"
)

const (
	Ceil Policy = iota
	Reference
)

// Policy decides how many rows each band receives.
//
// Ceil hands out ceil(height / workers) rows per band. Reference hands out
// height/workers + 1 rows, which over-allocates by one row whenever height is
// a multiple of workers; it is kept so older renders can be reproduced with
// the exact same band layout. The rendered pixels are identical either way.
type Policy int

func (p Policy) String() string {
	return []string{
		"ceil", "reference",
	}[p]
}

func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "ceil":
		return Ceil, nil
	case "reference":
		return Reference, nil
	}
	return Ceil, fmt.Errorf("unknown partition policy %q", name)
}

func (p Policy) MarshalText() ([]byte, error) {
	if p < Ceil || p > Reference {
		return nil, errors.New("invalid partition policy")
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	policy, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Band is a horizontal strip of rows [Top, Top+Height) of an image Width pixels wide.
type Band struct {
	ID     int
	Top    int
	Height int
	Width  int
}

func (b *Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("ID: %d ", b.ID)
	output += fmt.Sprintf("Top: %d ", b.Top)
	output += fmt.Sprintf("Height: %d ", b.Height)
	output += fmt.Sprintf("Width: %d}", b.Width)
	return output
}

// Start is the index of the band's first pixel in a row-major buffer.
func (b *Band) Start() int {
	return b.Top * b.Width
}

// End is one past the index of the band's last pixel in a row-major buffer.
func (b *Band) End() int {
	return (b.Top + b.Height) * b.Width
}

func (b *Band) Pixels() int {
	return b.Height * b.Width
}

func (b *Band) Empty() bool {
	return b.Height == 0 || b.Width == 0
}

// RowsPerBand returns the number of rows given to each band for an image of
// the given height split between workers.
func RowsPerBand(height int, workers int, policy Policy) int {
	if workers < 1 {
		workers = 1
	}
	if policy == Reference {
		return height/workers + 1
	}
	return (height + workers - 1) / workers
}

// Partition splits the rows of a width x height image into exactly workers
// consecutive bands. The bands never overlap and together cover every row.
// Bands past the last row have a height of 0.
func Partition(width int, height int, workers int, policy Policy) []Band {
	if workers < 1 || height < 0 {
		return nil
	}

	rows := RowsPerBand(height, workers, policy)
	bands := make([]Band, workers)
	for i := 0; i < workers; i++ {
		top := i * rows
		if top > height {
			top = height
		}
		bandHeight := rows
		if top+bandHeight > height {
			bandHeight = height - top
		}
		bands[i] = Band{
			ID:     i,
			Top:    top,
			Height: bandHeight,
			Width:  width,
		}
	}
	return bands
}
