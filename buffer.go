package pixed

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Common errors for buffer and history operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixed: invalid dimensions")

	// ErrDimensionMismatch is returned when a snapshot is restored into a
	// buffer of a different size.
	ErrDimensionMismatch = errors.New("pixed: snapshot dimensions do not match buffer")

	// ErrNilSnapshot is returned when restoring from a nil snapshot.
	ErrNilSnapshot = errors.New("pixed: nil snapshot")

	// ErrHistoryIndex is returned when jumping to a history position that
	// does not exist.
	ErrHistoryIndex = errors.New("pixed: history index out of range")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("pixed: invalid color")
)

// Buffer is a mutable grid of RGBA cells.
//
// Cells are addressed by (x, y) with 0 <= x < Width and 0 <= y < Height.
// Writes outside that range are ignored, so a drag that rounds past the
// canvas edge never touches neighboring storage.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	width  int
	height int
	data   []uint8 // non-premultiplied RGBA, 4 bytes per cell
}

// NewBuffer creates a buffer of the given size with every cell transparent.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Paint sets the cell at (x, y) to c.
// Out-of-range coordinates are a silent no-op.
func (b *Buffer) Paint(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.set(x, y, c)
}

// Pixel returns the color of the cell at (x, y).
// Out-of-range coordinates return Transparent.
func (b *Buffer) Pixel(x, y int) Color {
	if !b.InBounds(x, y) {
		return Transparent
	}
	return b.get(x, y)
}

// Clear fills every cell with c.
func (b *Buffer) Clear(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Snapshot returns an immutable deep copy of the buffer.
// Later edits to b never show through the snapshot.
func (b *Buffer) Snapshot() *Snapshot {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Snapshot{
		width:  b.width,
		height: b.height,
		data:   data,
	}
}

// Restore replaces the buffer contents with a copy of s.
// The snapshot must have the same dimensions as the buffer; a mismatch is
// reported as ErrDimensionMismatch and leaves the buffer untouched.
func (b *Buffer) Restore(s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	if s.width != b.width || s.height != b.height {
		return fmt.Errorf("%w: snapshot %dx%d, buffer %dx%d",
			ErrDimensionMismatch, s.width, s.height, b.width, b.height)
	}
	copy(b.data, s.data)
	return nil
}

// ToImage copies the buffer into a new image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// RGBA64At implements the image.RGBA64Image interface.
func (b *Buffer) RGBA64At(x, y int) color.RGBA64 {
	return b.Pixel(x, y).RGBA64()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

func (b *Buffer) get(x, y int) Color {
	i := (y*b.width + x) * 4
	return Color{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

func (b *Buffer) set(x, y int, c Color) {
	i := (y*b.width + x) * 4
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}
