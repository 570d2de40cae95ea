package pixed

import (
	"bytes"
	"image"
	"image/color"
)

// Snapshot is an immutable copy of a Buffer at one point in time.
// Snapshots are created by Buffer.Snapshot and stored by History.
// Nothing in the API hands out the underlying storage, so a Snapshot may be
// shared freely.
type Snapshot struct {
	width  int
	height int
	data   []uint8
}

// Width returns the number of columns.
func (s *Snapshot) Width() int {
	return s.width
}

// Height returns the number of rows.
func (s *Snapshot) Height() int {
	return s.height
}

// Pixel returns the color of the cell at (x, y).
// Out-of-range coordinates return Transparent.
func (s *Snapshot) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Equal reports whether two snapshots have the same size and cells.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.width == other.width && s.height == other.height && bytes.Equal(s.data, other.data)
}

// ToImage copies the snapshot into a new image.NRGBA.
func (s *Snapshot) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// At implements the image.Image interface.
func (s *Snapshot) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// RGBA64At implements the image.RGBA64Image interface.
func (s *Snapshot) RGBA64At(x, y int) color.RGBA64 {
	return s.Pixel(x, y).RGBA64()
}

// Bounds implements the image.Image interface.
func (s *Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Snapshot) ColorModel() color.Model {
	return color.NRGBAModel
}
