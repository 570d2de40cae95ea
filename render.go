package pixed

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Render scales src up by cellSize so that each cell becomes a
// cellSize×cellSize block. Scaling is nearest-neighbor, keeping cell edges
// sharp. A cellSize below 1 is treated as 1.
func Render(src image.Image, cellSize int) *image.NRGBA {
	cellSize = max(cellSize, 1)
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*cellSize, b.Dy()*cellSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// DrawGrid outlines every cellSize×cellSize block of dst with c.
func DrawGrid(dst draw.Image, cellSize int, c Color) {
	if cellSize < 2 {
		return
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := (x-b.Min.X)%cellSize, (y-b.Min.Y)%cellSize
			if dx == 0 || dy == 0 || dx == cellSize-1 || dy == cellSize-1 {
				dst.Set(x, y, c)
			}
		}
	}
}

// Thumbnail shrinks or enlarges src so that its longer side is size pixels,
// keeping the aspect ratio. Used for history browsers.
func Thumbnail(src image.Image, size int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if size < 1 || w == 0 || h == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	tw, th := size, size
	if w > h {
		th = max(h*size/w, 1)
	} else if h > w {
		tw = max(w*size/h, 1)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Render draws the live canvas at the session's zoom level, optionally
// with cell borders in GridLine color.
func (s *Session) Render(grid bool) *image.NRGBA {
	img := Render(s.buf, s.cellSize)
	if grid {
		DrawGrid(img, s.cellSize, GridLine)
	}
	return img
}

// Thumbnail renders history entry i with its longer side size pixels.
func (s *Session) Thumbnail(i, size int) (*image.NRGBA, bool) {
	snap, ok := s.hist.Entry(i)
	if !ok {
		return nil, false
	}
	return Thumbnail(snap, size), true
}
