package state

// TagKind enumerates the status chips shown next to the editor label.
type TagKind int

const (
	// Stable ordering for display: Unnamed/Named, Clean/Dirty, Lines, Size
	UNNAMED TagKind = iota
	NAMED
	CLEAN
	DIRTY
	LINES
	SIZE
)

// Tag represents a single status chip. Value is used for numeric counters
// (line count, byte size). Other tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
