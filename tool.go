package pixed

// Tool selects what a pointer press does to the canvas.
type Tool uint8

const (
	// Brush paints single cells along the pointer path.
	Brush Tool = iota

	// Bucket flood-fills the 4-connected region under the pointer.
	Bucket
)

// String returns a string representation of the tool.
func (t Tool) String() string {
	switch t {
	case Brush:
		return "Brush"
	case Bucket:
		return "Bucket"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the defined tools.
func (t Tool) Valid() bool {
	return t <= Bucket
}
