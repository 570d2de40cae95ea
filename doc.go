// Package pixed is the editing engine of a pixel-art editor.
//
// # Overview
//
// A canvas is a fixed grid of RGBA cells held in a [Buffer]. Cells are
// painted one at a time with the brush or recolored in bulk with a
// 4-connected flood fill. Every finished action is recorded in a bounded
// [History] of immutable [Snapshot] values, which supports undo, redo and
// jumping back to any earlier entry.
//
// A [Session] ties one Buffer and one History together with the active
// [Tool], paint color and zoom level. Front ends translate input into
// Session calls and render the Buffer afterwards:
//
//	s, _ := pixed.NewSession(pixed.WithGridSize(16, 16), pixed.WithBackground(pixed.White))
//	s.SetColor(pixed.Black)
//	s.PointerDown(0, 0)
//	s.PointerUp() // one history entry per stroke
//
//	s.SetTool(pixed.Bucket)
//	s.PointerDown(3, 3) // fills and commits
//
//	s.Undo()
//	img := s.Render(true)
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left cell
//   - X increases right
//   - Y increases down
//
// Screen positions map to cells with [CellAt]:
// floor((screen - origin) / cellSize).
//
// # History
//
// History keeps at most [DefaultHistoryLimit] states unless configured
// otherwise. When the limit is exceeded the oldest state is dropped and can
// no longer be reached by undo. Committing a new state, or jumping to an
// earlier one, discards redo history.
//
// # Concurrency
//
// Buffer, History and Session are not safe for concurrent use. The logger
// set with [SetLogger] is.
package pixed

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
