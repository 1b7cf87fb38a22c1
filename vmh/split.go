package vmh

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moffa90/go-memimg/internal/atomicfile"
)

// Extension is the file suffix of memory-initialization files.
const Extension = ".vmh"

// Split distributes the bytes of every data word over BytesPerWord lanes.
//
// Within a word the first two hex characters go to the highest lane and the
// last two to lane 0. Each byte token is followed by a space and each data
// line ends with a newline. Address and comment lines are copied verbatim to
// every lane.
//
// Example:
//
//	f, _ := vmh.ParseReader(strings.NewReader("@0000\nDEADBEEF\n"))
//	lanes, _ := vmh.Split(f)
//	// lanes.Data[3] = "@0000\nDE \n"
//	// lanes.Data[0] = "@0000\nEF \n"
func Split(f *File, opts ...Option) (*Lanes, error) {
	if f == nil {
		return nil, fmt.Errorf("file cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := cfg.BytesPerWord
	if n < 1 {
		return nil, &LaneCountError{BytesPerWord: n}
	}

	bufs := make([]bytes.Buffer, n)
	for _, line := range f.Lines {
		if line.Kind != KindData {
			for i := range bufs {
				bufs[i].WriteString(line.Raw)
			}
			continue
		}

		for _, word := range line.Words {
			tokens, reason := splitWord(word, n)
			if reason != "" {
				if !cfg.Lenient {
					return nil, &MalformedWordError{Line: line.Number, Word: word, Reason: reason}
				}
				cfg.Logger.Warn("malformed word", "line", line.Number, "word", word, "reason", reason)
			}

			for lane := n - 1; lane >= 0; lane-- {
				bufs[lane].WriteString(tokens[lane])
				bufs[lane].WriteByte(' ')
			}
		}

		for i := range bufs {
			bufs[i].WriteByte('\n')
		}
	}

	lanes := &Lanes{BytesPerWord: n, Data: make([][]byte, n)}
	for i := range bufs {
		lanes.Data[i] = bufs[i].Bytes()
	}
	return lanes, nil
}

// splitWord cuts word into n two-character tokens, indexed by lane. A
// non-empty reason reports why the word is malformed; the tokens are then the
// best-effort cut: short words leave the lowest lanes empty or truncated and
// characters beyond 2*n are dropped.
func splitWord(word string, n int) ([]string, string) {
	tokens := make([]string, n)
	rest := word
	for lane := n - 1; lane >= 0; lane-- {
		take := 2
		if len(rest) < take {
			take = len(rest)
		}
		tokens[lane] = rest[:take]
		rest = rest[take:]
	}

	switch {
	case len(word) != 2*n:
		return tokens, fmt.Sprintf("has %d hex characters, expected %d", len(word), 2*n)
	case !isHex(word):
		return tokens, "contains non-hex characters"
	}
	return tokens, ""
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// OutputName returns the file name of a lane file: the lane index, then the
// input's file name with everything from the first ".vmh" removed, then ".vmh".
//
// Example:
//
//	vmh.OutputName("build/gcd.vmh", 2) // "2gcd.vmh"
func OutputName(input string, lane int) string {
	base := filepath.Base(input)
	if idx := strings.Index(base, Extension); idx >= 0 {
		base = base[:idx]
	}
	return strconv.Itoa(lane) + base + Extension
}

// Write creates the lane files for input in dir and returns their paths in
// lane order. All files are staged before any is moved into place; if staging
// fails no lane file is created.
func (l *Lanes) Write(dir, input string) ([]string, error) {
	batch := atomicfile.NewBatch(0644)
	for lane, data := range l.Data {
		if err := batch.Add(filepath.Join(dir, OutputName(input, lane)), data); err != nil {
			return nil, err
		}
	}

	return batch.Commit()
}

// SplitFile parses the .vmh file at path, splits it and writes the lane files
// into dir. Nothing is written unless the whole file splits successfully.
func SplitFile(path, dir string, opts ...Option) ([]string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := Parse(path)
	if err != nil {
		return nil, err
	}

	lanes, err := Split(f, opts...)
	if err != nil {
		return nil, err
	}

	paths, err := lanes.Write(dir, path)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info("split vmh file",
		"path", path,
		"lines", len(f.Lines),
		"lanes", lanes.BytesPerWord,
		"output_dir", dir,
	)

	return paths, nil
}
