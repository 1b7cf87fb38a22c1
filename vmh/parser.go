package vmh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Line prefixes recognized by the parser.
const (
	// AddressPrefix starts an address marker line
	AddressPrefix = "@"

	// CommentPrefix starts a comment line
	CommentPrefix = "//"

	// DefaultLineCapacity is the default initial capacity for the lines slice
	DefaultLineCapacity = 256
)

// Parse parses a .vmh file from the given file path.
//
// Example:
//
//	f, err := vmh.Parse("gcd.vmh")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d lines\n", len(f.Lines))
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a .vmh file from any io.Reader.
// Line terminators are kept in Line.Raw so markers can be copied verbatim.
func ParseReader(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	file := &File{Lines: make([]Line, 0, DefaultLineCapacity)}

	lineNum := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		if raw != "" {
			lineNum++
			file.Lines = append(file.Lines, parseLine(lineNum, raw))
		}

		if err != nil {
			break
		}
	}

	return file, nil
}

func parseLine(number int, raw string) Line {
	line := Line{Number: number, Raw: raw}

	switch {
	case strings.HasPrefix(raw, AddressPrefix):
		line.Kind = KindAddress
	case strings.HasPrefix(raw, CommentPrefix):
		line.Kind = KindComment
	default:
		line.Kind = KindData
		text := strings.TrimRight(raw, "\r\n")
		if i := strings.Index(text, CommentPrefix); i >= 0 {
			text = text[:i]
		}
		line.Words = strings.Fields(text)
	}

	return line
}
