package pixed

// point is a pending cell coordinate. It may lie outside the buffer; range
// checks happen when it is taken off the worklist.
type point struct {
	x, y int
}

// worklist holds coordinates waiting to be examined by floodFill.
// The fill result does not depend on the order pop hands them back.
type worklist interface {
	push(p point)
	pop() (point, bool)
}

// stack is the LIFO worklist used by FloodFill.
type stack []point

func (s *stack) push(p point) {
	*s = append(*s, p)
}

func (s *stack) pop() (point, bool) {
	n := len(*s)
	if n == 0 {
		return point{}, false
	}
	p := (*s)[n-1]
	*s = (*s)[:n-1]
	return p, true
}

// FloodFill recolors every cell 4-connected to (x, y) that has exactly the
// seed cell's color, and returns the number of cells changed.
//
// The seed color is captured once before filling starts. If it already
// equals c, or (x, y) is out of range, nothing happens and 0 is returned.
// Diagonal neighbors are never considered connected.
func (b *Buffer) FloodFill(x, y int, c Color) int {
	s := make(stack, 0, 64)
	return b.floodFill(x, y, c, &s)
}

func (b *Buffer) floodFill(x, y int, fill Color, pending worklist) int {
	if !b.InBounds(x, y) {
		return 0
	}
	seed := b.get(x, y)
	if seed == fill {
		return 0
	}

	changed := 0
	pending.push(point{x, y})
	for {
		p, ok := pending.pop()
		if !ok {
			break
		}
		if !b.InBounds(p.x, p.y) || b.get(p.x, p.y) != seed {
			continue
		}
		b.set(p.x, p.y, fill)
		changed++

		pending.push(point{p.x + 1, p.y})
		pending.push(point{p.x - 1, p.y})
		pending.push(point{p.x, p.y + 1})
		pending.push(point{p.x, p.y - 1})
	}

	Logger().Debug("pixed: flood fill",
		"x", x, "y", y, "seed", seed.Hex(), "fill", fill.Hex(), "cells", changed)
	return changed
}
