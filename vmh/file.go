package vmh

// LineKind classifies a line of a .vmh file.
type LineKind int

const (
	// KindData is a line of space-separated words
	KindData LineKind = iota

	// KindAddress is an address marker line starting with '@'
	KindAddress

	// KindComment is a line starting with "//"
	KindComment
)

func (k LineKind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindAddress:
		return "address"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// File represents a parsed .vmh file.
type File struct {
	// Lines holds every input line in order
	Lines []Line
}

// Line is a single line of a .vmh file.
type Line struct {
	// Number is the 1-based line number
	Number int

	// Kind classifies the line
	Kind LineKind

	// Raw is the line exactly as read, including its terminator
	Raw string

	// Words holds the words of a data line with the terminator stripped
	Words []string
}

// Lanes holds the per-lane output of Split.
type Lanes struct {
	// BytesPerWord is the number of lanes
	BytesPerWord int

	// Data holds the contents of each lane file, indexed by lane
	Data [][]byte
}
