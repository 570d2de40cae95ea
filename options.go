package pixed

// Defaults used by NewSession.
const (
	DefaultGridSize = 64
	DefaultCellSize = 10

	// MinCellSize is the smallest cell size ZoomOut will go to.
	MinCellSize = 2

	// ZoomStep is the cell size change applied by ZoomIn and ZoomOut.
	ZoomStep = 2
)

// SessionOption configures a Session during creation.
//
// Example:
//
//	s, err := pixed.NewSession(
//	    pixed.WithGridSize(32, 32),
//	    pixed.WithBackground(pixed.White),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	width        int
	height       int
	cellSize     int
	historyLimit int
	background   Color
	color        Color
	tool         Tool
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		width:        DefaultGridSize,
		height:       DefaultGridSize,
		cellSize:     DefaultCellSize,
		historyLimit: DefaultHistoryLimit,
		background:   Transparent,
		color:        Black,
		tool:         Brush,
	}
}

// WithGridSize sets the canvas size in cells.
func WithGridSize(width, height int) SessionOption {
	return func(o *sessionOptions) {
		o.width = width
		o.height = height
	}
}

// WithCellSize sets the on-screen size of one cell in pixels.
// Values below MinCellSize are raised to MinCellSize.
func WithCellSize(px int) SessionOption {
	return func(o *sessionOptions) {
		o.cellSize = max(px, MinCellSize)
	}
}

// WithHistoryLimit sets how many states the session keeps for undo.
// Zero or less selects DefaultHistoryLimit.
func WithHistoryLimit(n int) SessionOption {
	return func(o *sessionOptions) {
		o.historyLimit = n
	}
}

// WithBackground sets the color of a blank canvas.
// The default is Transparent.
func WithBackground(c Color) SessionOption {
	return func(o *sessionOptions) {
		o.background = c
	}
}

// WithColor sets the initial paint color.
func WithColor(c Color) SessionOption {
	return func(o *sessionOptions) {
		o.color = c
	}
}

// WithTool sets the initial tool. Unknown tools are ignored.
func WithTool(t Tool) SessionOption {
	return func(o *sessionOptions) {
		if t.Valid() {
			o.tool = t
		}
	}
}
