// Command pad-binary appends fill bytes to a binary image so it can be
// uploaded with the UART bootloader.
//
// The bootloader writes the program at a load offset inside local memory, so
// the image must not be padded to the full memory size. With the bootloader
// loading at 0x300 of a 4096-byte memory the image is padded to 3328 bytes,
// which is the default when no size is given.
//
// Usage:
//
//	pad-binary gcd 3328
//	pad-binary gcd 0xD00
//	pad-binary --memory-size 8KiB gcd
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/moffa90/go-memimg/internal/cli"
	"github.com/moffa90/go-memimg/padder"
)

// CLI defines the command-line interface for pad-binary.
type CLI struct {
	cli.Globals `embed:""`

	Binary string `arg:"" name:"binary" help:"Binary image to pad in place"`
	Size   string `arg:"" optional:"" name:"size" help:"Target size in bytes (3328, 0xD00, 3.25KiB); default is memory size minus load offset"`

	MemorySize string `name:"memory-size" help:"Local memory size used when size is omitted (default 4096)"`
	LoadOffset string `name:"load-offset" help:"Bootloader load offset used when size is omitted (default 0x300)"`
	Fill       string `name:"fill" help:"Fill byte, e.g. 0 or 0xFF (default 0)"`
}

// Run pads the image and prints a summary to w.
func (c *CLI) Run(w io.Writer) error {
	cfg, logger, err := c.Setup()
	if err != nil {
		return err
	}

	size, err := c.targetSize(cfg.MemorySize, cfg.LoadOffset)
	if err != nil {
		return err
	}

	fill := byte(cfg.Fill)
	if c.Fill != "" {
		v, err := strconv.ParseUint(c.Fill, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid fill byte %q: must be 0-255", c.Fill)
		}
		fill = byte(v)
	}

	res, err := padder.PadFile(c.Binary, size, padder.WithFill(fill), padder.WithLogger(logger))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", c.Binary)
		}
		return err
	}

	if res.Unchanged {
		fmt.Fprintf(w, "%s: already %s, unchanged (blake3 %s)\n",
			res.Path, humanize.IBytes(uint64(res.TargetSize)), res.Digest)
		return nil
	}

	fmt.Fprintf(w, "%s: %s -> %s, %d bytes appended (blake3 %s)\n",
		res.Path,
		humanize.IBytes(uint64(res.OriginalSize)),
		humanize.IBytes(uint64(res.TargetSize)),
		res.Padded,
		res.Digest,
	)
	return nil
}

// targetSize resolves the size argument, falling back to the space left
// after the bootloader load offset.
func (c *CLI) targetSize(memorySize, loadOffset int64) (int64, error) {
	if c.Size != "" {
		return padder.ParseSize(c.Size)
	}

	var err error
	if c.MemorySize != "" {
		if memorySize, err = padder.ParseSize(c.MemorySize); err != nil {
			return 0, fmt.Errorf("--memory-size: %w", err)
		}
	}
	if c.LoadOffset != "" {
		if loadOffset, err = padder.ParseSize(c.LoadOffset); err != nil {
			return 0, fmt.Errorf("--load-offset: %w", err)
		}
	}

	return padder.FitSize(memorySize, loadOffset)
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("pad-binary"),
		kong.Description("Pad a binary image with trailing fill bytes for the UART bootloader"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run(os.Stdout))
}
