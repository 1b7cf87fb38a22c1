package padder

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"

	"github.com/moffa90/go-memimg/internal/atomicfile"
)

// MaxSize is the largest target size Pad and PadFile accept.
const MaxSize int64 = 4 << 30

// keptModeBits are the mode bits carried over to the padded file.
const keptModeBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// Result describes one PadFile run.
type Result struct {
	// Path is the padded file
	Path string

	// OriginalSize is the image length before padding
	OriginalSize int64

	// TargetSize is the requested length
	TargetSize int64

	// Padded is the number of fill bytes appended
	Padded int64

	// Unchanged is set when the image already had the target size and
	// nothing was written
	Unchanged bool

	// Digest is the BLAKE3-256 hex digest of the final image
	Digest string
}

// Pad returns a copy of data extended with fill bytes to exactly size bytes.
//
// Example:
//
//	out, _ := padder.Pad([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 8, 0x00)
//	// out = DE AD BE EF 00 00 00 00
func Pad(data []byte, size int64, fill byte) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size < int64(len(data)) {
		return nil, &TargetTooSmallError{Size: int64(len(data)), Target: size}
	}

	out := make([]byte, size)
	n := copy(out, data)
	if fill != 0x00 {
		copy(out[n:], bytes.Repeat([]byte{fill}, len(out)-n))
	}
	return out, nil
}

// PadFile pads the file at path to size bytes in place.
// The file is read fully before it is replaced; see the package documentation
// for the exact guarantees. A symlink is followed and its target is padded.
func PadFile(path string, size int64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkSize(size); err != nil {
		return nil, err
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open file: %s is a directory", path)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	res := &Result{
		Path:         path,
		OriginalSize: int64(len(data)),
		TargetSize:   size,
	}

	if res.OriginalSize == size {
		res.Unchanged = true
		res.Digest = digest(data)
		cfg.Logger.Debug("image already at target size", "path", path, "size", size)
		return res, nil
	}

	padded, err := Pad(data, size, cfg.Fill)
	if err != nil {
		var tooSmall *TargetTooSmallError
		if errors.As(err, &tooSmall) {
			tooSmall.Path = path
		}
		return nil, err
	}

	if err := atomicfile.WriteFile(target, padded, info.Mode()&keptModeBits); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	res.Padded = size - res.OriginalSize
	res.Digest = digest(padded)

	cfg.Logger.Info("padded image",
		"path", path,
		"original_size", res.OriginalSize,
		"target_size", size,
		"fill", fmt.Sprintf("0x%02X", cfg.Fill),
	)

	return res, nil
}

// ParseSize parses a size argument. Integers may be decimal or carry a 0x,
// 0o or 0b prefix; values ending in a unit letter are parsed as human sizes
// ("4KiB", "3.25 KiB").
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &SizeError{Input: s, Err: errors.New("empty value")}
	}

	if n, err := strconv.ParseInt(trimmed, 0, 64); err == nil {
		if n < 0 {
			return 0, &SizeError{Input: s, Err: errors.New("must not be negative")}
		}
		return n, nil
	}

	last := rune(trimmed[len(trimmed)-1])
	if !unicode.IsLetter(last) {
		return 0, &SizeError{Input: s, Err: errors.New("not an integer")}
	}

	n, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, &SizeError{Input: s, Err: err}
	}
	if n > math.MaxInt64 {
		return 0, &SizeError{Input: s, Err: errors.New("too large")}
	}
	return int64(n), nil
}

// FitSize returns the payload capacity of a memory of memorySize bytes when
// the bootloader loads programs at loadOffset.
func FitSize(memorySize, loadOffset int64) (int64, error) {
	if memorySize <= 0 {
		return 0, fmt.Errorf("memory size must be positive, got %d", memorySize)
	}
	if loadOffset < 0 || loadOffset >= memorySize {
		return 0, fmt.Errorf("load offset 0x%X is outside memory of %d bytes", loadOffset, memorySize)
	}
	return memorySize - loadOffset, nil
}

func checkSize(size int64) error {
	if size < 0 {
		return &SizeError{Input: strconv.FormatInt(size, 10), Err: errors.New("must not be negative")}
	}
	if size > MaxSize {
		return &SizeError{
			Input: strconv.FormatInt(size, 10),
			Err:   fmt.Errorf("exceeds maximum of %s", humanize.IBytes(uint64(MaxSize))),
		}
	}
	return nil
}

func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
