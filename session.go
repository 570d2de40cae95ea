package pixed

import (
	"fmt"
	"math"
)

// Session is one editing session: a live Buffer, its History, and the
// current tool, color and zoom level.
//
// A front end drives a Session with pointer and command calls and renders
// Buffer after each one. Every call runs to completion, and the paint and
// commit belonging to one action happen inside the same call. Session is
// not safe for concurrent use; callers with several goroutines must
// serialize access.
type Session struct {
	buf  *Buffer
	hist *History

	tool       Tool
	color      Color
	background Color
	cellSize   int

	// stroking is set between PointerDown and PointerUp of a brush stroke;
	// dirty records whether the stroke changed any cell.
	stroking bool
	dirty    bool
}

// NewSession creates a session with a blank canvas.
func NewSession(opts ...SessionOption) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := NewBuffer(o.width, o.height)
	if err != nil {
		return nil, err
	}
	buf.Clear(o.background)

	s := &Session{
		buf:        buf,
		hist:       NewHistory(buf.Snapshot(), o.historyLimit),
		tool:       o.tool,
		color:      o.color,
		background: o.background,
		cellSize:   o.cellSize,
	}
	Logger().Info("pixed: session created",
		"width", o.width, "height", o.height, "cellSize", o.cellSize,
		"historyLimit", s.hist.Limit())
	return s, nil
}

// Buffer returns the live canvas. Callers should treat it as read-only and
// go through the Session to edit it, so that history stays consistent.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// History returns the session's undo history, for browsing entries.
// Use Session.Undo, Redo and JumpTo to move through it.
func (s *Session) History() *History {
	return s.hist
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool changes the active tool. An open brush stroke is committed first.
func (s *Session) SetTool(t Tool) {
	if !t.Valid() || t == s.tool {
		return
	}
	s.endStroke()
	s.tool = t
}

// Color returns the paint color.
func (s *Session) Color() Color {
	return s.color
}

// SetColor changes the paint color.
func (s *Session) SetColor(c Color) {
	s.color = c
}

// Background returns the color of a blank canvas.
func (s *Session) Background() Color {
	return s.background
}

// GridSize returns the canvas size in cells.
func (s *Session) GridSize() (width, height int) {
	return s.buf.Width(), s.buf.Height()
}

// CellSize returns the on-screen size of one cell in pixels.
func (s *Session) CellSize() int {
	return s.cellSize
}

// Stroking reports whether a brush stroke is in progress.
func (s *Session) Stroking() bool {
	return s.stroking
}

// PointerDown applies the active tool at cell (x, y).
//
// The brush paints the cell and starts a stroke that is committed by
// PointerUp. The bucket fills and commits immediately; a fill that changes
// nothing is not recorded. Out-of-range cells paint nothing, but a brush
// stroke still starts so that dragging back onto the canvas keeps painting.
func (s *Session) PointerDown(x, y int) {
	s.endStroke()

	switch s.tool {
	case Brush:
		s.stroking = true
		s.paint(x, y)
	case Bucket:
		if s.buf.FloodFill(x, y, s.color) > 0 {
			s.hist.Commit(s.buf)
		}
	}
}

// PointerMove continues a brush stroke at cell (x, y).
// Without an open stroke it does nothing.
func (s *Session) PointerMove(x, y int) {
	if !s.stroking {
		return
	}
	s.paint(x, y)
}

// PointerUp ends a brush stroke and commits it as one history entry.
// A stroke that changed no cell leaves history alone.
// It is also the right call when the pointer leaves the canvas.
func (s *Session) PointerUp() {
	s.endStroke()
}

// Undo steps the canvas back one history entry.
// It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.endStroke()
	snap, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.mustRestore(snap)
	return true
}

// Redo reapplies the most recently undone entry.
// It returns false when there is nothing to redo.
func (s *Session) Redo() bool {
	s.endStroke()
	snap, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.mustRestore(snap)
	return true
}

// JumpTo makes history entry i the current canvas and discards every entry
// after it, including redo history.
func (s *Session) JumpTo(i int) error {
	s.endStroke()
	snap, err := s.hist.JumpTo(i)
	if err != nil {
		return err
	}
	s.mustRestore(snap)
	return nil
}

// Resize replaces the canvas with a blank one of the given size and starts
// a new history. The previous drawing and its history are discarded.
func (s *Session) Resize(width, height int) error {
	buf, err := NewBuffer(width, height)
	if err != nil {
		return err
	}
	s.stroking, s.dirty = false, false
	buf.Clear(s.background)
	s.buf = buf
	s.hist.Reset(buf.Snapshot())
	Logger().Info("pixed: canvas resized", "width", width, "height", height)
	return nil
}

// ZoomIn enlarges cells by ZoomStep pixels.
func (s *Session) ZoomIn() {
	s.cellSize += ZoomStep
}

// ZoomOut shrinks cells by ZoomStep pixels, stopping at MinCellSize.
// It returns false when already at the minimum.
func (s *Session) ZoomOut() bool {
	if s.cellSize-ZoomStep < MinCellSize {
		return false
	}
	s.cellSize -= ZoomStep
	return true
}

// CellAt converts a screen position to a cell coordinate, given the
// screen position of the canvas origin. The result may be out of range.
func (s *Session) CellAt(screenX, screenY, originX, originY float64) (x, y int) {
	size := float64(s.cellSize)
	return CellAt(screenX, originX, size), CellAt(screenY, originY, size)
}

// CellAt converts one screen coordinate to a cell index:
// floor((screen - origin) / cellSize).
func CellAt(screen, origin, cellSize float64) int {
	return int(math.Floor((screen - origin) / cellSize))
}

func (s *Session) paint(x, y int) {
	if !s.buf.InBounds(x, y) || s.buf.Pixel(x, y) == s.color {
		return
	}
	s.buf.Paint(x, y, s.color)
	s.dirty = true
}

func (s *Session) endStroke() {
	if !s.stroking {
		return
	}
	if s.dirty {
		s.hist.Commit(s.buf)
	}
	s.stroking, s.dirty = false, false
}

func (s *Session) mustRestore(snap *Snapshot) {
	if err := s.buf.Restore(snap); err != nil {
		panic(fmt.Sprintf("pixed: history out of sync with canvas: %v", err))
	}
	Logger().Debug("pixed: canvas restored", "historyLen", s.hist.Len(), "redo", s.hist.FutureLen())
}
